// Package view defines the boundary with the rendering layer. Handlers hand
// a tagged Result to a Renderer; markup is never built on this side.
package view

import (
	"encoding/json"
	"net/http"
)

// Name is the closed set of views the rendering layer can be asked for.
type Name string

const (
	Home        Name = "home"
	Login       Name = "login"
	Signup      Name = "signup"
	Members     Name = "members"
	Admin       Name = "admin"
	LoginError  Name = "loginError"
	SignupError Name = "signupError"
	NotFound    Name = "notFound"
	Forbidden   Name = "forbidden"
)

// Result is the outcome of a handler: which view to render and the data it
// needs. Data is always well-formed, even for failure views.
type Result struct {
	View Name           `json:"view"`
	Data map[string]any `json:"data"`
}

// Renderer turns a Result into a response body.
type Renderer interface {
	Render(w http.ResponseWriter, status int, res Result)
}

// JSONRenderer is the default rendering collaborator: it emits the tagged
// result as JSON and leaves markup to the real presentation layer.
type JSONRenderer struct{}

func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

func (r *JSONRenderer) Render(w http.ResponseWriter, status int, res Result) {
	if res.Data == nil {
		res.Data = map[string]any{}
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(res)
}
