package usecase

// FamilyMemberInput é o bloco de familiar enviado junto com o registro
// (ID vazio = ainda não persistido)
type FamilyMemberInput struct {
	ID             string `json:"id,omitempty"`
	FullName       string `json:"full_name"`
	BirthDate      string `json:"birth_date"`
	Relationship   string `json:"relationship"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	City           string `json:"city"`
	ZipCode        string `json:"zip_code"`
	Country        string `json:"country"`
	ChurchName     string `json:"church_name"`
	DocumentType   string `json:"document_type"`
	DocumentNumber string `json:"document_number"`
}

type RegisterMemberInput struct {
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	BirthDate      string `json:"birth_date"`
	Address        string `json:"address"`
	City           string `json:"city"`
	ZipCode        string `json:"zip_code"`
	Country        string `json:"country"`
	ChurchName     string `json:"church_name"`
	DocumentType   string `json:"document_type"`
	DocumentNumber string `json:"document_number"`

	// URL devolvida pelo storage; o upload em si acontece antes, no handler
	ProfilePhotoURL string `json:"profile_photo_url"`

	FamilyMembers []FamilyMemberInput `json:"family_members"`
}

type RegisterMemberOutput struct {
	ID           string `json:"id"`
	MemberID     string `json:"member_id"`
	FullName     string `json:"full_name"`
	RegisteredAt string `json:"registered_at"`
	FamilyCount  int    `json:"family_count"`
	Msg          string `json:"msg"`
}

type RetreatSignupInput struct {
	MemberID        string `json:"member_id"`
	PaymentMethod   string `json:"payment_method"`
	PaymentType     string `json:"payment_type"`
	PaymentProofURL string `json:"payment_proof_url"`
}

type RetreatSignupOutput struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Msg    string `json:"msg"`
}
