// Package flash carries one-shot messages across a redirect in a cookie.
// The message is set just before the redirect and popped (read and cleared)
// when the next page renders.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

const cookieName = "flash"

// Categories used for styling the message on the client.
const (
	CategorySuccess = "success"
	CategoryError   = "error"
)

// Message is a transient user-facing notice
type Message struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// Set stores a message in the flash cookie
func Set(c *gin.Context, category, text string) {
	payload, err := json.Marshal(Message{Category: category, Text: text})
	if err != nil {
		return
	}
	encoded := base64.RawURLEncoding.EncodeToString(payload)
	c.SetCookie(cookieName, encoded, 300, "/", "", false, true)
}

// Success sets a success message
func Success(c *gin.Context, text string) {
	Set(c, CategorySuccess, text)
}

// Error sets an error message
func Error(c *gin.Context, text string) {
	Set(c, CategoryError, text)
}

// Pop returns the pending message, if any, and clears the cookie
func Pop(c *gin.Context) *Message {
	encoded, err := c.Cookie(cookieName)
	if err != nil {
		if err == http.ErrNoCookie {
			return nil
		}
		return nil
	}

	// Clear regardless of whether the payload decodes
	c.SetCookie(cookieName, "", -1, "/", "", false, true)

	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil
	}

	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		return nil
	}
	return &msg
}
