package chatControllers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/usmanrimi/abb-gallery-ease-sub001/models"
	"github.com/usmanrimi/abb-gallery-ease-sub001/validation"
	"gorm.io/gorm"
)

type MessageInput struct {
	Text     string `json:"text"`
	ImageURL string `json:"image_url"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	wsMu      sync.Mutex
	wsClients = make(map[*websocket.Conn]bool)
)

// POST /user/chat/messages
func SendMessage(db *gorm.DB, fromAdmin bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := models.LoadSiteSettings(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load settings"})
			return
		}
		if !settings.ChatEnabled {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Chat is currently disabled"})
			return
		}

		var input MessageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		if err := validation.ChatMessage(input.Text, input.ImageURL); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		if err := validation.Note(input.Text); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		message := models.ChatMessage{
			UserID:    c.GetString("user_id"),
			FromAdmin: fromAdmin,
			Text:      input.Text,
			ImageURL:  input.ImageURL,
			CreatedAt: time.Now(),
		}
		if err := db.Create(&message).Error; err != nil {
			log.Println("❌ Failed to save chat message:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to save message"})
			return
		}

		broadcastMessage(message)
		c.JSON(http.StatusCreated, gin.H{"success": true, "message": message})
	}
}

// GET /user/chat/messages — the caller's own thread, oldest first.
func GetMessages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var messages []models.ChatMessage
		if err := db.
			Where("user_id = ?", c.GetString("user_id")).
			Order("created_at ASC").
			Find(&messages).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch messages"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "messages": messages})
	}
}

// GET /user/chat/ws
func ChatWebSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	wsMu.Lock()
	wsClients[conn] = true
	wsMu.Unlock()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			wsMu.Lock()
			delete(wsClients, conn)
			wsMu.Unlock()
			break
		}
	}
}

func broadcastMessage(message models.ChatMessage) {
	data, err := json.Marshal(message)
	if err != nil {
		return
	}
	wsMu.Lock()
	defer wsMu.Unlock()
	for client := range wsClients {
		client.WriteMessage(websocket.TextMessage, data)
	}
}
