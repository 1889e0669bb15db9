package models

type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusInterviewed ApplicationStatus = "interviewed"
	ApplicationStatusHired       ApplicationStatus = "hired"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusShortlisted, ApplicationStatusInterviewed,
		ApplicationStatusHired, ApplicationStatusRejected:
		return true
	default:
		return false
	}
}

type AssessmentStatus string

const (
	AssessmentStatusAvailable  AssessmentStatus = "available"
	AssessmentStatusInProgress AssessmentStatus = "in_progress"
	AssessmentStatusCompleted  AssessmentStatus = "completed"
	AssessmentStatusExpired    AssessmentStatus = "expired"
)

type AssessmentResult string

const (
	AssessmentResultPass AssessmentResult = "pass"
	AssessmentResultFail AssessmentResult = "fail"
)

// InterviewRoundStatus статус раунда из старого сценария оценки работодателем
type InterviewRoundStatus string

const (
	InterviewRoundStatusPassed InterviewRoundStatus = "passed"
	InterviewRoundStatusFailed InterviewRoundStatus = "failed"
)

type RoundType string

const (
	RoundTypeTechnical    RoundType = "technical"
	RoundTypeNonTechnical RoundType = "nonTechnical"
	RoundTypeManagerial   RoundType = "managerial"
	RoundTypeFinal        RoundType = "final"
	RoundTypeHR           RoundType = "hr"
	RoundTypeAssessment   RoundType = "assessment"
	RoundTypeAptitude     RoundType = "aptitude"
	RoundTypeCoding       RoundType = "coding"
)

// RoundTypeNames отображаемые названия известных типов этапов
var RoundTypeNames = map[RoundType]string{
	RoundTypeTechnical:    "Technical",
	RoundTypeNonTechnical: "Non-Technical",
	RoundTypeManagerial:   "Managerial",
	RoundTypeFinal:        "Final",
	RoundTypeHR:           "HR",
	RoundTypeAssessment:   "Assessment",
	RoundTypeAptitude:     "Aptitude test",
	RoundTypeCoding:       "Coding",
}

// DisplayName название типа этапа, неизвестный тип возвращается как есть
func (t RoundType) DisplayName() string {
	if name, ok := RoundTypeNames[t]; ok {
		return name
	}
	return string(t)
}

const AssessmentRoundName = "Assessment"

type Severity string

const (
	SeverityNeutral Severity = "neutral"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeveritySuccess Severity = "success"
	SeverityDanger  Severity = "danger"
)

// RoundSource источник, из которого получен список этапов
type RoundSource string

const (
	RoundSourceStages          RoundSource = "stages"
	RoundSourceLegacyProcesses RoundSource = "legacy_processes"
	RoundSourceRoundOrder      RoundSource = "round_order"
	RoundSourceRoundTypeFlags  RoundSource = "round_type_flags"
	RoundSourcePlaceholder     RoundSource = "placeholder"
)

type CountdownPhase string

const (
	CountdownPhaseNone    CountdownPhase = ""
	CountdownPhaseToStart CountdownPhase = "to_start"
	CountdownPhaseToEnd   CountdownPhase = "to_end"
)
