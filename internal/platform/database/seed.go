package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/gosimple/slug"
)

type seedSubject struct {
	ID             int64
	Name           string
	Description    string
	EstimatedWeeks int
}

type seedTopic struct {
	ID                int64
	Name              string
	SubjectID         int64
	WeekNumber        int
	EstimatedTimeMins int
}

type seedQuestion struct {
	Q       string   `json:"q"`
	Options []string `json:"options"`
	Correct int      `json:"correct"`
}

var seedSubjects = []seedSubject{
	{1, "Data Structures", "Arrays, Lists, Trees, Graphs", 4},
	{2, "Calculus", "Limits, Derivatives, Integration", 3},
}

var seedTopics = []seedTopic{
	{1, "Arrays", 1, 1, 45},
	{2, "Linked List", 1, 2, 50},
	{3, "Trees", 1, 3, 60},
	{4, "Graphs", 1, 4, 55},
	{5, "Limits", 2, 1, 40},
	{6, "Derivatives", 2, 2, 50},
	{7, "Integration", 2, 3, 55},
}

var dataStructuresQuiz = []seedQuestion{
	{"What is the time complexity of array access?", []string{"O(1)", "O(n)", "O(log n)"}, 0},
	{"Which is a dynamic array?", []string{"C array", "Python list", "Both"}, 1},
	{"Array elements are stored:", []string{"Contiguously", "Randomly", "In a tree"}, 0},
	{"Size of static array is:", []string{"Fixed", "Dynamic", "Unknown"}, 0},
	{"Index of first element in 0-based array?", []string{"1", "0", "-1"}, 1},
	{"Best for random access?", []string{"Linked List", "Array", "Stack"}, 1},
	{"Worst case insert at end in dynamic array?", []string{"O(1)", "O(n)", "O(log n)"}, 1},
	{"Traversal of array of n elements?", []string{"O(1)", "O(n)", "O(n^2)"}, 1},
	{"Array can store?", []string{"Same type", "Mixed types", "Only numbers"}, 0},
	{"Memory for array is?", []string{"Contiguous", "Scattered", "Stack only"}, 0},
}

var calculusQuiz = []seedQuestion{
	{"Derivative of x^2?", []string{"x", "2x", "x^2"}, 1},
	{"Integral of 1/x?", []string{"ln|x|", "x^2", "1/x^2"}, 0},
	{"Limit of sin(x)/x as x->0?", []string{"0", "1", "undefined"}, 1},
	{"d/dx(e^x)=?", []string{"e^x", "xe^(x-1)", "0"}, 0},
	{"∫0 dx = ?", []string{"0", "x", "C"}, 2},
	{"Chain rule: d/dx f(g(x)) = ?", []string{"f' g'", "f'(g(x)) g'(x)", "f g"}, 1},
	{"Limit of (1+1/n)^n as n→∞?", []string{"1", "e", "0"}, 1},
	{"Derivative of constant?", []string{"0", "1", "constant"}, 0},
	{"∫x dx = ?", []string{"x^2", "x^2/2 + C", "2x"}, 1},
	{"L'Hospital applies when limit is?", []string{"0/0 or ∞/∞", "0", "1"}, 0},
}

// SeedDemoData inserts the fixed demo rows, but only when the users table is
// empty so an existing installation is never touched.
func SeedDemoData(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("database.SeedDemoData: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("database.SeedDemoData: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO users (id, name, email, college, stream, streak, xp, enrolled_courses, mastery_map)
		VALUES (1, 'Avinash', 'avinash@example.com', 'Engineering College', 'CSE', 7, 1250,
		        '["Data Structures","Calculus"]', '{"1":55,"2":72,"3":48,"4":65}')`)
	if err != nil {
		return fmt.Errorf("database.SeedDemoData: seed user: %w", err)
	}

	for _, s := range seedSubjects {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO subjects (id, name, slug, description, estimated_weeks) VALUES ($1, $2, $3, $4, $5)`,
			s.ID, s.Name, slug.Make(s.Name), s.Description, s.EstimatedWeeks)
		if err != nil {
			return fmt.Errorf("database.SeedDemoData: seed subject %q: %w", s.Name, err)
		}
	}

	for _, t := range seedTopics {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO topics (id, name, slug, subject_id, week_number, estimated_time_mins) VALUES ($1, $2, $3, $4, $5, $6)`,
			t.ID, t.Name, slug.Make(t.Name), t.SubjectID, t.WeekNumber, t.EstimatedTimeMins)
		if err != nil {
			return fmt.Errorf("database.SeedDemoData: seed topic %q: %w", t.Name, err)
		}
	}

	dsQuestions, err := json.Marshal(dataStructuresQuiz)
	if err != nil {
		return fmt.Errorf("database.SeedDemoData: %w", err)
	}
	calcQuestions, err := json.Marshal(calculusQuiz)
	if err != nil {
		return fmt.Errorf("database.SeedDemoData: %w", err)
	}
	for _, topicID := range []int64{1, 2, 3, 4} {
		if _, err = tx.ExecContext(ctx, `INSERT INTO quizzes (topic_id, questions) VALUES ($1, $2)`, topicID, dsQuestions); err != nil {
			return fmt.Errorf("database.SeedDemoData: seed quiz for topic %d: %w", topicID, err)
		}
	}
	for _, topicID := range []int64{5, 6, 7} {
		if _, err = tx.ExecContext(ctx, `INSERT INTO quizzes (topic_id, questions) VALUES ($1, $2)`, topicID, calcQuestions); err != nil {
			return fmt.Errorf("database.SeedDemoData: seed quiz for topic %d: %w", topicID, err)
		}
	}

	// Explicit ids were used above; move the sequences past them.
	for _, table := range []string{"users", "subjects", "topics"} {
		_, err = tx.ExecContext(ctx,
			fmt.Sprintf(`SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT MAX(id) FROM %s))`, table, table))
		if err != nil {
			return fmt.Errorf("database.SeedDemoData: reset %s sequence: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("database.SeedDemoData: %w", err)
	}
	return nil
}
