package event

type Type string

const (
	TypePropertyCreated Type = "property.created"
	TypeLeaseCreated    Type = "lease.created"
	TypeInvoiceCreated  Type = "invoice.created"
	TypeInvoiceSettled  Type = "invoice.settled"
	TypePersonCreated   Type = "person.created"
	TypeUserLoggedIn    Type = "user.logged_in"
)

type Event struct {
	ID         string `json:"id"`
	Type       Type   `json:"type"`
	Resource   string `json:"resource,omitempty"`
	Details    string `json:"details,omitempty"`
	ActorID    string `json:"actor_id,omitempty"`
	ActorEmail string `json:"actor_email,omitempty"`
	Timestamp  string `json:"timestamp"`
}

type Bus interface {
	Publish(e Event)
	Subscribe() (<-chan Event, func())
}
