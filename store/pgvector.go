package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
	pgxvec "github.com/pgvector/pgvector-go/pgx"

	"github.com/smallnest/ragroute/route"
)

// DBPool is the subset of pgxpool.Pool used by the store, extracted so
// tests can substitute a mock.
type DBPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// PgVectorStore implements VectorStore on PostgreSQL with the pgvector
// extension, using cosine distance for similarity search.
type PgVectorStore struct {
	pool      DBPool
	tableName string
	dimension int
}

var _ VectorStore = (*PgVectorStore)(nil)

// PgVectorOptions configures a PgVectorStore.
type PgVectorOptions struct {
	ConnString string
	TableName  string // Default "documents"
	Dimension  int    // Default 384 (all-MiniLM-L6-v2)
}

// NewPgVectorStore connects to PostgreSQL and returns a pgvector-backed
// store. The pgvector types are registered on every new connection.
func NewPgVectorStore(ctx context.Context, opts PgVectorOptions) (*PgVectorStore, error) {
	cfg, err := pgxpool.ParseConfig(opts.ConnString)
	if err != nil {
		return nil, fmt.Errorf("invalid connection string: %w", err)
	}
	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return pgxvec.RegisterTypes(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	return newPgVectorStore(pool, opts), nil
}

// NewPgVectorStoreWithPool creates a store over an existing pool. Useful
// for testing with mocks.
func NewPgVectorStoreWithPool(pool DBPool, opts PgVectorOptions) *PgVectorStore {
	return newPgVectorStore(pool, opts)
}

func newPgVectorStore(pool DBPool, opts PgVectorOptions) *PgVectorStore {
	tableName := opts.TableName
	if tableName == "" {
		tableName = "documents"
	}
	dimension := opts.Dimension
	if dimension == 0 {
		dimension = 384
	}
	return &PgVectorStore{
		pool:      pool,
		tableName: tableName,
		dimension: dimension,
	}
}

// InitSchema enables the pgvector extension and creates the documents
// table if it doesn't exist.
func (s *PgVectorStore) InitSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE EXTENSION IF NOT EXISTS vector;
		CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			content TEXT NOT NULL,
			source TEXT,
			metadata JSONB,
			embedding vector(%d) NOT NULL
		);
	`, s.tableName, s.dimension)

	if _, err := s.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Add upserts embedded documents.
func (s *PgVectorStore) Add(ctx context.Context, docs []Document) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, content, source, metadata, embedding)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET content = EXCLUDED.content, source = EXCLUDED.source,
		    metadata = EXCLUDED.metadata, embedding = EXCLUDED.embedding
	`, s.tableName)

	for _, doc := range docs {
		if len(doc.Embedding) == 0 {
			return fmt.Errorf("document %s has no embedding", doc.ID)
		}

		metadata, err := json.Marshal(doc.Metadata)
		if err != nil {
			return fmt.Errorf("failed to encode metadata for %s: %w", doc.ID, err)
		}

		_, err = s.pool.Exec(ctx, query,
			doc.ID, doc.Text, doc.Source, metadata, pgvector.NewVector(doc.Embedding))
		if err != nil {
			return fmt.Errorf("failed to insert document %s: %w", doc.ID, err)
		}
	}
	return nil
}

// Search returns the k nearest documents by cosine distance. The score is
// 1 - distance, so higher is more similar.
func (s *PgVectorStore) Search(ctx context.Context, embedding []float32, k int) ([]route.VectorHit, error) {
	if k <= 0 {
		return nil, fmt.Errorf("k must be positive")
	}

	query := fmt.Sprintf(`
		SELECT content, source, 1 - (embedding <=> $1) AS score
		FROM %s
		ORDER BY embedding <=> $1
		LIMIT $2
	`, s.tableName)

	rows, err := s.pool.Query(ctx, query, pgvector.NewVector(embedding), k)
	if err != nil {
		return nil, fmt.Errorf("vector search failed: %w", err)
	}
	defer rows.Close()

	var hits []route.VectorHit
	for rows.Next() {
		var hit route.VectorHit
		if err := rows.Scan(&hit.Text, &hit.Source, &hit.Score); err != nil {
			return nil, fmt.Errorf("failed to scan search result: %w", err)
		}
		hits = append(hits, hit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading search results: %w", err)
	}

	return hits, nil
}

// Delete removes documents by ID.
func (s *PgVectorStore) Delete(ctx context.Context, ids []string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = ANY($1)", s.tableName)
	if _, err := s.pool.Exec(ctx, query, ids); err != nil {
		return fmt.Errorf("failed to delete documents: %w", err)
	}
	return nil
}

// Count returns the number of stored documents.
func (s *PgVectorStore) Count(ctx context.Context) (int64, error) {
	var count int64
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", s.tableName)
	if err := s.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return count, nil
}

// Close closes the underlying pool.
func (s *PgVectorStore) Close() error {
	s.pool.Close()
	return nil
}
