package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Document is an opaque rich-text JSON document (the editor's raw content)
// stored in a JSONB column. The server never interprets it.
type Document []byte

func (d Document) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return d, nil
}

func (d *Document) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = nil
		return nil
	}
	*d = append((*d)[:0], data...)
	return nil
}

// Empty reports whether no document was supplied.
func (d Document) Empty() bool {
	return len(d) == 0 || string(d) == "null"
}

func (d Document) Value() (driver.Value, error) {
	if d.Empty() {
		return nil, nil
	}
	if !json.Valid(d) {
		return nil, errors.New("document is not valid JSON")
	}
	return string(d), nil
}

func (d *Document) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = nil
	case []byte:
		*d = append(Document(nil), v...)
	case string:
		*d = Document(v)
	default:
		return errors.New("unsupported document column type")
	}
	return nil
}

// Tags is a list of labels stored as a JSONB array.
type Tags []string

func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		t = Tags{}
	}
	b, err := json.Marshal([]string(t))
	if err != nil {
		return nil, fmt.Errorf("error marshaling tags: %w", err)
	}
	return string(b), nil
}

func (t *Tags) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*t = Tags{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported tags column type")
	}

	var decoded []string
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("error decoding tags: %w", err)
	}
	*t = decoded
	return nil
}

// Announcement is a post on a class stream. A Schedule in the future hides
// it from students until then.
type Announcement struct {
	AnnouncementID int64      `json:"id"`
	ClassID        int64      `json:"class_id"`
	AuthorID       int64      `json:"author_id"`
	Title          string     `json:"title"`
	Content        Document   `json:"content"`
	Tags           Tags       `json:"tags"`
	Schedule       *time.Time `json:"schedule,omitempty"`
	Pinned         bool       `json:"pinned"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Comment is a reply under an announcement.
type Comment struct {
	CommentID      int64     `json:"id"`
	AnnouncementID int64     `json:"announcement_id"`
	UserID         int64     `json:"user_id"`
	AuthorName     string    `json:"author_name"`
	AuthorPicture  string    `json:"author_picture,omitempty"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"created_at"`
}

// AssignmentType is the kind of classwork.
type AssignmentType string

const (
	AssignmentTypeAssignment AssignmentType = "assignment"
	AssignmentTypeQuiz       AssignmentType = "quiz"
	AssignmentTypeQuestion   AssignmentType = "question"
)

func (t AssignmentType) Valid() bool {
	switch t {
	case AssignmentTypeAssignment, AssignmentTypeQuiz, AssignmentTypeQuestion:
		return true
	}
	return false
}

// Assignment is classwork students hand in. Points is the maximum grade;
// nil means ungraded.
type Assignment struct {
	AssignmentID int64          `json:"id"`
	ClassID      int64          `json:"class_id"`
	Type         AssignmentType `json:"type"`
	Title        string         `json:"title"`
	Description  Document       `json:"description"`
	Due          *time.Time     `json:"due,omitempty"`
	Points       *int32         `json:"points,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// Submission is one student's hand-in for an assignment. There is at most one
// per assignment and student; "marking undone" hides it without deleting.
type Submission struct {
	SubmissionID int64            `json:"id"`
	AssignmentID int64            `json:"assignment_id"`
	UserID       int64            `json:"user_id"`
	StudentName  string           `json:"student_name,omitempty"`
	StudentEmail string           `json:"student_email,omitempty"`
	SubmittedAt  time.Time        `json:"submitted_at"`
	Graded       bool             `json:"graded"`
	Grade        *float64         `json:"grade,omitempty"`
	Feedback     string           `json:"feedback,omitempty"`
	Files        []SubmissionFile `json:"files"`
}

// SubmissionFile is an uploaded object attached to a submission.
type SubmissionFile struct {
	FileID       int64     `json:"id"`
	SubmissionID int64     `json:"-"`
	Filename     string    `json:"filename"`
	Key          string    `json:"key"`
	URL          string    `json:"url"`
	CreatedAt    time.Time `json:"created_at"`
}

// Grade is a teacher's mark for one student on one assignment.
type Grade struct {
	AssignmentID int64
	StudentID    int64
	Grade        float64
	Feedback     string
}
