package entity

import (
	"time"
)

// Import Job Status
const (
	StatusPending    = "PENDING"
	StatusProcessing = "PROCESSING"
	StatusCompleted  = "COMPLETED"
	StatusFailed     = "FAILED"
	StatusSkipped    = "SKIPPED"
)

// ImportOptions tune a single schedule import run
type ImportOptions struct {
	IgnoreImages   bool   `bson:"ignoreImages"`
	SaveToDatabase bool   `bson:"saveToDatabase"`
	SpecialityName string `bson:"specialityName"`
	AcademicYear   string `bson:"academicYear"`
	Semester       string `bson:"semester"`
	SectionName    string `bson:"sectionName"`
}

// ImportJob represents one uploaded schedule document awaiting
// processing
type ImportJob struct {
	ID          string                 `bson:"_id,omitempty"`
	JobID       string                 `bson:"jobId"`
	Filename    string                 `bson:"filename"`
	Format      string                 `bson:"format"`
	Payload     []byte                 `bson:"payload"`
	Options     ImportOptions          `bson:"options"`
	Status      string                 `bson:"status"`
	ErrorDetail string                 `bson:"errorDetail"`
	Summary     map[string]interface{} `bson:"summary"`
	ReceivedAt  time.Time              `bson:"receivedAt"`
	StartedAt   time.Time              `bson:"startedAt"`
	ProcessedAt time.Time              `bson:"processedAt"`
}
