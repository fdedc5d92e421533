package model

import "time"

// Known values for the submission_capacity field. The form sends these as
// free text and the server stores whatever arrives; the constants exist for
// clients and for documentation, not for enforcement.
const (
	CapacityAgency      = "Agency"
	CapacityFreelancer  = "Freelancer"
	CapacityCorporation = "Corporation"
)

// Entry represents one persisted contest-entry record.
// This is a pure domain model with no database-specific dependencies or tags.
// VisualLinks is derived by the upload pipeline and is nil for entries that
// were submitted without attachments.
type Entry struct {
	ID                    int64     `json:"id"`
	FullName              string    `json:"full_name"`
	EmailAddress          string    `json:"email_address"`
	ContactNumber         string    `json:"contact_number"`
	Capacity              string    `json:"submission_capacity"`
	TeamMembers           string    `json:"team_members"`
	ChequeName            string    `json:"prize_cheque_name"`
	ConsentDeclarations   string    `json:"consent_declarations"`
	Challenge             string    `json:"challenge"`
	Insight               string    `json:"insight"`
	StrategicIdea         string    `json:"strategic_idea"`
	StrategyExecution     string    `json:"strategy_execution"`
	ExpectedResults       string    `json:"expected_results"`
	EntryTopic            string    `json:"entry_topic"`
	ConceptStrategy       string    `json:"concept_strategy"`
	Objective             string    `json:"objective"`
	Rationale             string    `json:"rationale"`
	Measurement           string    `json:"measurement"`
	InsightDescription    string    `json:"insight_description"`
	StrategicSolution     string    `json:"strategic_solution"`
	CreativePlan          string    `json:"creative_plan"`
	CommunicationStrategy string    `json:"communication_strategy"`
	ResultImpact          string    `json:"result_impact"`
	WhyOutstanding        string    `json:"why_outstanding"`
	ResultScope           string    `json:"result_scope"`
	VisualLinks           *string   `json:"visual_links"`
	CreatedAt             time.Time `json:"created_at"`
}
