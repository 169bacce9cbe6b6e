package migrations

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigration(Up, Down)
}

func Up(tx *sql.Tx) error {
	// Contributor tablosu:
	createContributorsTable := `
	CREATE TABLE contributors (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		relation VARCHAR(255),
		session_id VARCHAR(64) NOT NULL,
		user_agent VARCHAR(500),
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	CREATE INDEX idx_contributors_session_id ON contributors (session_id);
	`
	if _, err := tx.Exec(createContributorsTable); err != nil {
		return fmt.Errorf("could not create contributors table: %w", err)
	}

	// Video tablosu:
	createVideosTable := `
	CREATE TABLE videos (
		id UUID PRIMARY KEY,
		contributor_id UUID NOT NULL REFERENCES contributors(id) ON DELETE CASCADE,
		storage_path VARCHAR(500) NOT NULL,
		duration INTEGER NOT NULL DEFAULT 0,
		is_vertical BOOLEAN NOT NULL DEFAULT FALSE,
		has_note BOOLEAN NOT NULL DEFAULT FALSE,
		selected BOOLEAN NOT NULL DEFAULT FALSE,
		favorite BOOLEAN NOT NULL DEFAULT FALSE,
		tags JSONB NOT NULL DEFAULT '[]'::jsonb,
		order_index INTEGER,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	CREATE INDEX idx_videos_order ON videos (order_index ASC NULLS LAST, created_at DESC);
	`
	if _, err := tx.Exec(createVideosTable); err != nil {
		return fmt.Errorf("could not create videos table: %w", err)
	}

	// Note tablosu:
	createNotesTable := `
	CREATE TABLE notes (
		video_id UUID PRIMARY KEY REFERENCES videos(id) ON DELETE CASCADE,
		content VARCHAR(240) NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	`
	if _, err := tx.Exec(createNotesTable); err != nil {
		return fmt.Errorf("could not create notes table: %w", err)
	}

	return nil
}

func Down(tx *sql.Tx) error {
	// Tabloları silme işlemini ters sırada yap.
	dropTables := []string{"notes", "videos", "contributors"}
	for _, table := range dropTables {
		if _, err := tx.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s;", table)); err != nil {
			return fmt.Errorf("could not drop table %s: %w", table, err)
		}
	}
	return nil
}
