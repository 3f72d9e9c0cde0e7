package screens

// Notice is the payload of SampleDialog.
type Notice struct {
	Title       string
	Description string
}

// Confirmation is the payload of ConfirmDialog.
type Confirmation struct {
	Message string
}

// User is shown by ProfileDialog.
type User struct {
	Name       string
	Email      string
	Department string
}

// Profile is the payload of ProfileDialog.
type Profile struct {
	User User
}

// Note is the payload of NoteEditor.
type Note struct {
	Initial string
}
