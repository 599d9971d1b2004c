package views

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.html
var files embed.FS

// Views renders the two landing pages. Which one a request gets is decided
// by a single authentication-state check in the handler.
type Views struct {
	app    *template.Template
	signin *template.Template
}

func New() (*Views, error) {
	app, err := template.ParseFS(files, "templates/app.html")
	if err != nil {
		return nil, err
	}
	signin, err := template.ParseFS(files, "templates/signin.html")
	if err != nil {
		return nil, err
	}
	return &Views{app: app, signin: signin}, nil
}

// RenderApp writes the notes app page for an authenticated user.
func (v *Views) RenderApp(w io.Writer, username string) error {
	return v.app.Execute(w, struct{ Username string }{Username: username})
}

// RenderSignIn writes the combined sign-in / sign-up page.
func (v *Views) RenderSignIn(w io.Writer) error {
	return v.signin.Execute(w, nil)
}
