package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/jeevibe/engine/internal/errs"
	"github.com/jeevibe/engine/internal/model"
	"github.com/jeevibe/engine/internal/store"
)

// questionSchema validates one catalog record before import. Records that
// fail validation abort the whole import; a partially seeded catalog is
// worse than none.
const questionSchema = `{
	"type": "object",
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"subject": {"enum": ["physics", "chemistry", "mathematics"]},
		"chapter": {"type": "string", "minLength": 1},
		"chapter_key": {"type": "string", "minLength": 1},
		"sub_topics": {"type": "array", "items": {"type": "string"}},
		"question_type": {"enum": ["mcq_single", "numerical"]},
		"options": {"type": "array", "items": {"type": "string"}},
		"correct_answer": {"type": "string", "minLength": 1},
		"answer_value": {"type": "number"},
		"answer_range": {
			"type": "object",
			"properties": {
				"min": {"type": "number"},
				"max": {"type": "number"}
			},
			"required": ["min", "max"]
		},
		"irt": {
			"type": "object",
			"properties": {
				"a": {"type": "number", "minimum": 0},
				"b": {"type": "number", "minimum": -4, "maximum": 4},
				"c": {"type": "number", "minimum": 0, "maximum": 0.5}
			},
			"required": ["a", "b", "c"]
		},
		"is_assessment": {"type": "boolean"}
	},
	"required": ["id", "subject", "chapter", "chapter_key", "question_type", "correct_answer", "irt"]
}`

// knownFields are lifted into typed columns; everything else rides along in
// the payload column untouched.
var knownFields = map[string]bool{
	"id": true, "subject": true, "chapter": true, "chapter_key": true,
	"sub_topics": true, "question_type": true, "options": true,
	"correct_answer": true, "answer_value": true, "answer_range": true,
	"irt": true, "is_assessment": true,
}

type importRecord struct {
	ID            string             `json:"id"`
	Subject       string             `json:"subject"`
	Chapter       string             `json:"chapter"`
	ChapterKey    string             `json:"chapter_key"`
	SubTopics     []string           `json:"sub_topics"`
	QuestionType  string             `json:"question_type"`
	Options       []string           `json:"options"`
	CorrectAnswer string             `json:"correct_answer"`
	AnswerValue   *float64           `json:"answer_value"`
	AnswerRange   *model.AnswerRange `json:"answer_range"`
	IRT           struct {
		A float64 `json:"a"`
		B float64 `json:"b"`
		C float64 `json:"c"`
	} `json:"irt"`
	IsAssessment bool `json:"is_assessment"`
}

// Importer seeds the catalog from a JSON array of question records.
type Importer struct {
	questions store.QuestionRepo
	schema    *jsonschema.Schema
}

// NewImporter compiles the record schema once up front.
func NewImporter(questions store.QuestionRepo) (*Importer, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(questionSchema))
	if err != nil {
		return nil, fmt.Errorf("parse question schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("question.schema.json", doc); err != nil {
		return nil, fmt.Errorf("add question schema: %w", err)
	}
	sch, err := compiler.Compile("question.schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile question schema: %w", err)
	}
	return &Importer{questions: questions, schema: sch}, nil
}

// Import validates and writes every record from r, returning the number of
// newly inserted questions. Records whose id already exists are skipped.
func (im *Importer) Import(ctx context.Context, r io.Reader) (int, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return 0, errs.Wrap(errs.Validation, "CATALOG_READ", "read catalog file", err)
	}
	var rows []json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil {
		return 0, errs.Wrap(errs.Validation, "CATALOG_PARSE", "catalog must be a JSON array", err)
	}

	qs := make([]*store.Question, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for i, row := range rows {
		q, err := im.parseRecord(row)
		if err != nil {
			return 0, errs.Wrap(errs.Validation, "CATALOG_RECORD",
				"record "+strconv.Itoa(i)+" invalid", err)
		}
		if seen[q.ID] {
			return 0, errs.E(errs.Validation, "CATALOG_DUPLICATE",
				"record "+strconv.Itoa(i)+" repeats id "+q.ID)
		}
		seen[q.ID] = true
		qs = append(qs, q)
	}
	return im.questions.UpsertBatch(ctx, qs)
}

func (im *Importer) parseRecord(raw json.RawMessage) (*store.Question, error) {
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	if err := im.schema.Validate(instance); err != nil {
		return nil, err
	}

	var rec importRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	if rec.QuestionType == model.QuestionMCQSingle && len(rec.Options) < 2 {
		return nil, fmt.Errorf("mcq question %s has %d options", rec.ID, len(rec.Options))
	}

	var extras map[string]any
	if err := json.Unmarshal(raw, &extras); err != nil {
		return nil, err
	}
	for k := range extras {
		if knownFields[k] {
			delete(extras, k)
		}
	}
	if len(extras) == 0 {
		extras = nil
	}

	q := &store.Question{
		ID:            rec.ID,
		Subject:       rec.Subject,
		Chapter:       rec.Chapter,
		ChapterKey:    rec.ChapterKey,
		SubTopics:     rec.SubTopics,
		QuestionType:  rec.QuestionType,
		Options:       rec.Options,
		CorrectAnswer: rec.CorrectAnswer,
		AnswerValue:   rec.AnswerValue,
		AnswerRange:   rec.AnswerRange,
		IsAssessment:  rec.IsAssessment,
		Payload:       extras,
	}
	q.IRT.A, q.IRT.B, q.IRT.C = rec.IRT.A, rec.IRT.B, rec.IRT.C
	return q, nil
}
