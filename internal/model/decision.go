package model

type Reason string

const (
	ReasonNone             Reason = ""
	ReasonAlreadyFinalized Reason = "already-finalized"
	ReasonSaveFailed       Reason = "save-failed"
	ReasonUnavailable      Reason = "unavailable"
	ReasonModifiedLines    Reason = "modified-lines"
	ReasonStopped          Reason = "stopped"
	ReasonNotYetPaid       Reason = "not-yet-paid"
	ReasonHandledByServer  Reason = "handled-by-server"
	ReasonNotConfirmed     Reason = "not-confirmed"
	ReasonCancelled        Reason = "cancelled"
	ReasonInvalidOrder     Reason = "invalid-order"
)

type Decision struct {
	Accepted bool   `json:"accepted"`
	Reason   Reason `json:"reason,omitempty"`
}

func Accept() Decision {
	return Decision{Accepted: true}
}

func Reject(r Reason) Decision {
	return Decision{Reason: r}
}
