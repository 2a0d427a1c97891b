package domain

// ExtractionPhase identifica a fase atual de uma extração em andamento
type ExtractionPhase string

const (
	PhaseValidating   ExtractionPhase = "validating"
	PhaseFetchingData ExtractionPhase = "fetching_data"
	PhaseProcessing   ExtractionPhase = "processing"
	PhaseSaving       ExtractionPhase = "saving"
	PhaseComplete     ExtractionPhase = "complete"
	PhaseError        ExtractionPhase = "error"
)

// Progress é um evento de progresso emitido durante a extração
type Progress struct {
	Phase      ExtractionPhase `json:"phase"`
	Current    int             `json:"current"`
	Total      int             `json:"total"`
	Message    string          `json:"message"`
	Percentage int             `json:"percentage"`
}

// ProgressFunc recebe eventos de progresso. Pode ser nil quando o chamador
// não tem interesse em acompanhar a extração.
type ProgressFunc func(Progress)

// Report emite o evento de forma segura mesmo com callback nil
func (f ProgressFunc) Report(p Progress) {
	if f != nil {
		f(p)
	}
}
