package models

type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Note struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}
