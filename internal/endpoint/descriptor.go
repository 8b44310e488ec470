package endpoint

// Category groups endpoints by service area.
type Category string

const (
	CategoryEncryption     Category = "encryption"
	CategoryAuthentication Category = "authentication"
	CategoryMessaging      Category = "messaging"
	CategoryChannel        Category = "channel"
	CategoryCommerce       Category = "commerce"
	CategorySocial         Category = "social"
	CategoryUtility        Category = "utility"
	CategoryExternal       Category = "external"
	CategoryNotification   Category = "notification"
	CategoryCall           Category = "call"
	CategorySquare         Category = "square"
	CategoryE2EE           Category = "e2ee"
)

// Error-kind labels attached to classified application errors.
const (
	ErrorKindTalk    = "TalkException"
	ErrorKindChannel = "ChannelException"
	ErrorKindSquare  = "SquareException"
	ErrorKindLiff    = "LiffException"
)

// Descriptor describes one registered endpoint path. ErrorKind is
// optional; when empty the registry falls back to its built-in table.
type Descriptor struct {
	Path        string
	Category    Category
	ErrorKind   string
	Description string
	Deprecated  bool
}
