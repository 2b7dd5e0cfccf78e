package mail

type WelcomeEmailData struct {
	Name     string
	MemberID string
	CardLink string
	Church   string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
