package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	// Pure Go SQLite driver (no CGO).
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLiteStore is the SQLite-backed persistence layer. It implements
// CourseRepo, ProgressRepo, and EventRepo on a single database/sql pool.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the SQLite database at dsn, applies the
// recommended pragmas, and migrates the schema.
func OpenSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// applyPragmas configures SQLite for single-process server use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func migrate(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS courses (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL,
	youtube_url TEXT NOT NULL,
	video_id    TEXT NOT NULL,
	duration    INTEGER NOT NULL,
	metadata    TEXT NOT NULL,
	created_at  INTEGER NOT NULL,
	updated_at  INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS questions (
	id             TEXT PRIMARY KEY,
	course_id      TEXT NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
	type           TEXT NOT NULL,
	ts             INTEGER NOT NULL,
	prompt         TEXT NOT NULL,
	options        TEXT NOT NULL,
	correct_answer INTEGER NOT NULL,
	explanation    TEXT NOT NULL,
	ord            INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_questions_course ON questions(course_id, ord);

CREATE TABLE IF NOT EXISTS user_progress (
	id                  TEXT PRIMARY KEY,
	course_id           TEXT NOT NULL,
	session_id          TEXT NOT NULL,
	current_ts          INTEGER NOT NULL,
	completed_questions TEXT NOT NULL,
	attempts            TEXT NOT NULL,
	score               INTEGER NOT NULL,
	started_at          INTEGER NOT NULL,
	last_accessed_at    INTEGER NOT NULL,
	UNIQUE(course_id, session_id)
);

CREATE TABLE IF NOT EXISTS generation_events (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	provider      TEXT NOT NULL,
	model         TEXT NOT NULL,
	purpose       TEXT NOT NULL,
	input_tokens  INTEGER NOT NULL,
	output_tokens INTEGER NOT NULL,
	latency_ms    INTEGER NOT NULL,
	success       INTEGER NOT NULL,
	error_message TEXT NOT NULL,
	created_at    INTEGER NOT NULL
);
`
	_, err := db.Exec(schema)
	return err
}

func (s *SQLiteStore) CreateCourse(ctx context.Context, c *Course) error {
	if c.ID == "" {
		c.ID = NewID()
	}
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	meta, err := json.Marshal(c.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO courses (id, title, description, youtube_url, video_id, duration, metadata, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Title, c.Description, c.YouTubeURL, c.VideoID, c.Duration,
		string(meta), now.Unix(), now.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert course: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetCourse(ctx context.Context, id string) (*Course, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, description, youtube_url, video_id, duration, metadata, created_at, updated_at
		FROM courses WHERE id = ?`, id)

	var c Course
	var meta string
	var created, updated int64
	err := row.Scan(&c.ID, &c.Title, &c.Description, &c.YouTubeURL, &c.VideoID,
		&c.Duration, &meta, &created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan course: %w", err)
	}

	if err := json.Unmarshal([]byte(meta), &c.Metadata); err != nil {
		return nil, fmt.Errorf("unmarshal metadata: %w", err)
	}
	c.CreatedAt = time.Unix(created, 0)
	c.UpdatedAt = time.Unix(updated, 0)
	return &c, nil
}

func (s *SQLiteStore) ListCourses(ctx context.Context) ([]Course, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, youtube_url, video_id, duration, metadata, created_at, updated_at
		FROM courses ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("query courses: %w", err)
	}
	defer rows.Close()

	out := []Course{}
	for rows.Next() {
		var c Course
		var meta string
		var created, updated int64
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.YouTubeURL, &c.VideoID,
			&c.Duration, &meta, &created, &updated); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		if err := json.Unmarshal([]byte(meta), &c.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal metadata: %w", err)
		}
		c.CreatedAt = time.Unix(created, 0)
		c.UpdatedAt = time.Unix(updated, 0)
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) UpdateCourse(ctx context.Context, c *Course) error {
	c.UpdatedAt = time.Now()

	meta, err := json.Marshal(c.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE courses SET title = ?, description = ?, youtube_url = ?, video_id = ?,
			duration = ?, metadata = ?, updated_at = ?
		WHERE id = ?`,
		c.Title, c.Description, c.YouTubeURL, c.VideoID, c.Duration,
		string(meta), c.UpdatedAt.Unix(), c.ID,
	)
	if err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) CreateQuestions(ctx context.Context, courseID string, qs []Question) ([]Question, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM questions WHERE course_id = ?`, courseID); err != nil {
		return nil, fmt.Errorf("clear questions: %w", err)
	}

	stored := make([]Question, len(qs))
	for i, q := range qs {
		q.ID = NewID()
		q.CourseID = courseID
		q.Order = i

		opts, err := json.Marshal(q.Options)
		if err != nil {
			return nil, fmt.Errorf("marshal options: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO questions (id, course_id, type, ts, prompt, options, correct_answer, explanation, ord)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			q.ID, q.CourseID, q.Type, q.Timestamp, q.Prompt, string(opts),
			q.CorrectAnswer, q.Explanation, q.Order,
		)
		if err != nil {
			return nil, fmt.Errorf("insert question: %w", err)
		}
		stored[i] = q
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return stored, nil
}

func (s *SQLiteStore) GetQuestions(ctx context.Context, courseID string) ([]Question, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, course_id, type, ts, prompt, options, correct_answer, explanation, ord
		FROM questions WHERE course_id = ? ORDER BY ord`, courseID)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	var out []Question
	for rows.Next() {
		var q Question
		var opts string
		if err := rows.Scan(&q.ID, &q.CourseID, &q.Type, &q.Timestamp, &q.Prompt,
			&opts, &q.CorrectAnswer, &q.Explanation, &q.Order); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		if err := json.Unmarshal([]byte(opts), &q.Options); err != nil {
			return nil, fmt.Errorf("unmarshal options: %w", err)
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) CreateProgress(ctx context.Context, p *UserProgress) error {
	if p.ID == "" {
		p.ID = NewID()
	}
	now := time.Now()
	if p.StartedAt.IsZero() {
		p.StartedAt = now
	}
	p.LastAccessedAt = now

	completed, attempts, err := marshalProgressLists(p)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO user_progress (id, course_id, session_id, current_ts, completed_questions, attempts, score, started_at, last_accessed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.CourseID, p.SessionID, p.CurrentTimestamp, completed, attempts,
		p.Score, p.StartedAt.Unix(), p.LastAccessedAt.Unix(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("insert progress: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	return errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}

func (s *SQLiteStore) GetProgress(ctx context.Context, courseID, sessionID string) (*UserProgress, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, course_id, session_id, current_ts, completed_questions, attempts, score, started_at, last_accessed_at
		FROM user_progress WHERE course_id = ? AND session_id = ?`, courseID, sessionID)
	return scanProgress(row)
}

func (s *SQLiteStore) UpdateProgress(ctx context.Context, p *UserProgress) error {
	p.LastAccessedAt = time.Now()

	completed, attempts, err := marshalProgressLists(p)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE user_progress SET current_ts = ?, completed_questions = ?, attempts = ?, score = ?, last_accessed_at = ?
		WHERE id = ?`,
		p.CurrentTimestamp, completed, attempts, p.Score, p.LastAccessedAt.Unix(), p.ID,
	)
	if err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) AddAttempt(ctx context.Context, courseID, sessionID string, att QuestionAttempt) (*UserProgress, error) {
	p, err := s.GetProgress(ctx, courseID, sessionID)
	if err != nil {
		return nil, err
	}

	var total int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM questions WHERE course_id = ?`, courseID).Scan(&total); err != nil {
		return nil, fmt.Errorf("count questions: %w", err)
	}

	if att.AttemptedAt.IsZero() {
		att.AttemptedAt = time.Now()
	}
	p.Attempts = append(p.Attempts, att)
	p.CompletedQuestions = markCompleted(p.CompletedQuestions, att.QuestionID)
	p.Score = computeScore(p.Attempts, total)

	if err := s.UpdateProgress(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *SQLiteStore) AppendGeneration(ctx context.Context, ev GenerationEvent) error {
	success := 0
	if ev.Success {
		success = 1
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO generation_events (provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.Provider, ev.Model, ev.Purpose, ev.InputTokens, ev.OutputTokens,
		ev.LatencyMs, success, ev.ErrorMessage, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert generation event: %w", err)
	}
	return nil
}

func marshalProgressLists(p *UserProgress) (completed string, attempts string, err error) {
	cb, err := json.Marshal(p.CompletedQuestions)
	if err != nil {
		return "", "", fmt.Errorf("marshal completed questions: %w", err)
	}
	ab, err := json.Marshal(p.Attempts)
	if err != nil {
		return "", "", fmt.Errorf("marshal attempts: %w", err)
	}
	return string(cb), string(ab), nil
}

func scanProgress(row *sql.Row) (*UserProgress, error) {
	var p UserProgress
	var completed, attempts string
	var started, accessed int64
	err := row.Scan(&p.ID, &p.CourseID, &p.SessionID, &p.CurrentTimestamp,
		&completed, &attempts, &p.Score, &started, &accessed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan progress: %w", err)
	}

	if err := json.Unmarshal([]byte(completed), &p.CompletedQuestions); err != nil {
		return nil, fmt.Errorf("unmarshal completed questions: %w", err)
	}
	if err := json.Unmarshal([]byte(attempts), &p.Attempts); err != nil {
		return nil, fmt.Errorf("unmarshal attempts: %w", err)
	}
	p.StartedAt = time.Unix(started, 0)
	p.LastAccessedAt = time.Unix(accessed, 0)
	return &p, nil
}
