package domain

type Doctor struct {
	ID        int64  `json:"id_medico"`
	Name      string `json:"nome"`
	Specialty string `json:"especialidade"`
	Email     string `json:"email"`
	Phone     string `json:"telefone,omitempty"`
	License   string `json:"crm"`
}

// DoctorInput is the create/update payload. Password is forwarded exactly as
// entered; the gateway never substitutes a default one, that decision belongs
// to the backend.
type DoctorInput struct {
	Name      string `json:"nome"`
	Specialty string `json:"especialidade"`
	Email     string `json:"email"`
	Phone     string `json:"telefone,omitempty"`
	License   string `json:"crm"`
	Password  string `json:"senha,omitempty"`
}
