package entities

type BookingEmailData struct {
	UserName           string
	BookingCode        string
	ArtistName         string
	EventType          string
	StartTimeFormatted string
	EndTimeFormatted   string
	TotalAmount        int
	TotalHours         int
	Status             string
	Language           string
	CurrentYear        int
}
