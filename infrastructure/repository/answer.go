package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	_ "github.com/lib/pq"
	"github.com/melsayed/sales-analyst-api/infrastructure/database/postgres"
	"github.com/melsayed/sales-analyst-api/internal/domain"
)

const answersTable = "answers"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type AnswerRepository interface {
	SaveAnswer(answer *domain.Answer) error
	GetAnswerByID(id string) (*domain.Answer, error)
	ListAnswers(limit uint64) ([]*domain.Answer, error)
}

type answerRepository struct {
	conn *postgres.Connection
}

func NewAnswerRepository(conn *postgres.Connection) AnswerRepository {
	return &answerRepository{
		conn: conn,
	}
}

func (r *answerRepository) SaveAnswer(answer *domain.Answer) error {
	sections, err := json.Marshal(answer.Sections)
	if err != nil {
		return fmt.Errorf("encoding answer sections: %w", err)
	}

	queryBuilder := squirrel.
		Insert(answersTable).
		Columns(
			"id", "question", "focus", "intent", "brand", "item_code",
			"year_from", "year_to", "generated_sql", "narrative", "sections",
			"duration_ms", "created_at",
		).
		Values(
			answer.ID, answer.Question, answer.Focus, answer.Intent,
			answer.Brand, answer.ItemCode, answer.YearFrom, answer.YearTo,
			answer.GeneratedSQL, answer.Narrative, sections,
			answer.DurationMs, answer.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	answerSQL, answerArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("building answer insert: %w", err)
	}

	if _, err := r.conn.Exec(answerSQL, answerArgs...); err != nil {
		return fmt.Errorf("saving answer %s: %w", answer.ID, err)
	}

	return nil
}

func (r *answerRepository) GetAnswerByID(id string) (*domain.Answer, error) {
	row := r.conn.QueryRow(
		`SELECT id, question, focus, intent, brand, item_code, year_from, year_to,
			generated_sql, narrative, sections, duration_ms, created_at
		FROM answers WHERE id = $1`,
		id,
	)

	answer, err := scanAnswer(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading answer %s: %w", id, err)
	}

	return answer, nil
}

func (r *answerRepository) ListAnswers(limit uint64) ([]*domain.Answer, error) {
	queryBuilder := squirrel.
		Select(
			"id", "question", "focus", "intent", "brand", "item_code",
			"year_from", "year_to", "generated_sql", "narrative", "sections",
			"duration_ms", "created_at",
		).
		From(answersTable).
		OrderBy("created_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	listSQL, listArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building answer list query: %w", err)
	}

	rows, err := r.conn.Query(listSQL, listArgs...)
	if err != nil {
		return nil, fmt.Errorf("listing answers: %w", err)
	}
	defer rows.Close()

	var answers []*domain.Answer
	for rows.Next() {
		answer, err := scanAnswer(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning answer: %w", err)
		}
		answers = append(answers, answer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating answers: %w", err)
	}

	return answers, nil
}

func scanAnswer(scan func(dest ...any) error) (*domain.Answer, error) {
	var answer domain.Answer
	var sections []byte

	err := scan(
		&answer.ID,
		&answer.Question,
		&answer.Focus,
		&answer.Intent,
		&answer.Brand,
		&answer.ItemCode,
		&answer.YearFrom,
		&answer.YearTo,
		&answer.GeneratedSQL,
		&answer.Narrative,
		&sections,
		&answer.DurationMs,
		&answer.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(sections) > 0 {
		if err := json.Unmarshal(sections, &answer.Sections); err != nil {
			return nil, fmt.Errorf("decoding answer sections: %w", err)
		}
	}

	return &answer, nil
}
