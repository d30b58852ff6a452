package interfaces

import "beneficios_inss/internal/domain/entities"

// ITransitionRecorder observes successful lifecycle writes (metrics).
type ITransitionRecorder interface {
	RecordTransition(event string, to entities.RequestStatus)
	RecordRejection(event, reason string)
}
