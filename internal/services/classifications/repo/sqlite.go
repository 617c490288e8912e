package repo

import (
	"context"
	"strconv"
	"time"

	"taller/internal/core/taxonomy"
	"taller/internal/modkit/repokit"
	"taller/internal/platform/store"
	"taller/internal/services/classifications/domain"

	"github.com/google/uuid"
)

type (
	lite       struct{ q repokit.Queryer }
	liteBinder struct{}
)

// NewSQLite constructs the binder for the legacy clasificaciones_automaticas table
func NewSQLite() repokit.Binder[Storage] { return liteBinder{} }

// Bind implements repokit.Binder
func (liteBinder) Bind(q repokit.Queryer) Storage { return &lite{q: q} }

const liteSchema = `
CREATE TABLE IF NOT EXISTS clasificaciones_automaticas (
	id                   INTEGER PRIMARY KEY AUTOINCREMENT,
	mantenimiento_id     INTEGER NOT NULL,
	texto_original       TEXT    NOT NULL,
	tipo                 TEXT    NOT NULL,
	categoria_detectada  TEXT    NOT NULL,
	confianza            REAL    NOT NULL,
	palabras_encontradas TEXT,
	fecha_clasificacion  TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	uuid                 TEXT
);
CREATE INDEX IF NOT EXISTS idx_clasificaciones_mantenimiento ON clasificaciones_automaticas (mantenimiento_id)`

// legacy files predate the uuid column
const liteHasUUID = `SELECT count(*) FROM pragma_table_info('clasificaciones_automaticas') WHERE name = 'uuid'`

// the legacy app writes spanish pass names
var (
	passToTipo = map[taxonomy.Kind]string{taxonomy.KindPart: "repuesto", taxonomy.KindLabor: "trabajo"}
	tipoToPass = map[string]taxonomy.Kind{"repuesto": taxonomy.KindPart, "trabajo": taxonomy.KindLabor}
)

func (s *lite) Migrate(ctx context.Context) error {
	if _, err := s.q.Exec(ctx, liteSchema); err != nil {
		return err
	}
	n, err := store.Scalar[int](ctx, s.q, liteHasUUID)
	if err != nil {
		return err
	}
	if n == 0 {
		_, err = s.q.Exec(ctx, `ALTER TABLE clasificaciones_automaticas ADD COLUMN uuid TEXT`)
	}
	return err
}

func (s *lite) Insert(ctx context.Context, r domain.Record) error {
	kws, err := encodeKeywords(r.Keywords)
	if err != nil {
		return err
	}
	return store.ExecOne(ctx, s.q, `
		INSERT INTO clasificaciones_automaticas
			(mantenimiento_id, texto_original, tipo, categoria_detectada, confianza, palabras_encontradas, fecha_clasificacion, uuid)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RecordID, r.Text, passToTipo[r.Pass], r.Category, r.Confidence, kws,
		r.CreatedAt.UTC().Format(time.RFC3339Nano), r.ID.String())
}

func (s *lite) UsageStats(ctx context.Context, limit int) ([]domain.UsageRow, error) {
	return store.Many(ctx, s.q, scanUsage, `
		SELECT categoria_detectada, COUNT(*) AS uso_count, AVG(confianza)
		FROM clasificaciones_automaticas
		GROUP BY categoria_detectada
		ORDER BY uso_count DESC, categoria_detectada
		LIMIT ?`, limit)
}

func (s *lite) ListByRecord(ctx context.Context, recordID int64) ([]domain.Record, error) {
	return store.Many(ctx, s.q, scanLiteRecord, `
		SELECT id, COALESCE(uuid, ''), COALESCE(fecha_clasificacion, ''), mantenimiento_id, texto_original,
		       tipo, categoria_detectada, confianza, COALESCE(palabras_encontradas, '')
		FROM clasificaciones_automaticas
		WHERE mantenimiento_id = ?
		ORDER BY id`, recordID)
}

func (s *lite) Count(ctx context.Context) (int64, error) {
	return store.Scalar[int64](ctx, s.q, `SELECT COUNT(*) FROM clasificaciones_automaticas`)
}

// legacyNS derives stable ids for rows written before the uuid column existed
var legacyNS = uuid.MustParse("6f1c1f0e-3b7a-4c53-9d1e-2a4b8c0d5e71")

func scanLiteRecord(r repokit.Row) (domain.Record, error) {
	var (
		rec          domain.Record
		rowid        int64
		id, at, tipo string
		kws          string
	)
	if err := r.Scan(&rowid, &id, &at, &rec.RecordID, &rec.Text, &tipo, &rec.Category, &rec.Confidence, &kws); err != nil {
		return rec, err
	}
	if u, err := uuid.Parse(id); err == nil {
		rec.ID = u
	} else {
		rec.ID = uuid.NewSHA1(legacyNS, []byte(strconv.FormatInt(rowid, 10)))
	}
	rec.CreatedAt = parseLiteTime(at)
	rec.Pass = tipoToPass[tipo]
	if rec.Pass == "" {
		rec.Pass = taxonomy.Kind(tipo)
	}
	rec.Keywords = decodeKeywords([]byte(kws))
	return rec, nil
}

// parseLiteTime reads both our RFC 3339 stamps and sqlite's CURRENT_TIMESTAMP format
func parseLiteTime(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02T15:04:05Z"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
