package lead

import "time"

// Conversation roles as supplied by the widget.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Turn is one exchange unit of the caller-owned conversation history.
// The server is stateless: the widget resends the full history each turn.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Lead holds the contact details extracted from a model reply. The JSON
// tags match the keys the agent prompt instructs the model to emit inside
// the lead block; absent keys decode to "".
type Lead struct {
	Name           string `json:"nome"`
	ContactChannel string `json:"telefone"`
	Email          string `json:"email"`
	InterestType   string `json:"tipo_interesse"`
	Budget         string `json:"orcamento"`
	Postcode       string `json:"postcode"`
	Details        string `json:"detalhes_adicionais"`
}

// FromFields builds a Lead from the raw decoded block, applying
// empty-string defaults for missing keys.
func FromFields(fields map[string]string) Lead {
	return Lead{
		Name:           fields["nome"],
		ContactChannel: fields["telefone"],
		Email:          fields["email"],
		InterestType:   fields["tipo_interesse"],
		Budget:         fields["orcamento"],
		Postcode:       fields["postcode"],
		Details:        fields["detalhes_adicionais"],
	}
}

// Record is a Lead ready for persistence. Invalid leads are recorded too;
// the two flags are the only distinction.
type Record struct {
	Lead
	CapturedAt    time.Time
	EmailValid    bool
	PostcodeValid bool
}
