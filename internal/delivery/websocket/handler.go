package websocket

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"momentum-screener/internal/domain"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler streams the latest scan results to connected clients.
type Handler struct {
	scanRepo domain.ScanRepository
}

func NewHandler(scanRepo domain.ScanRepository) *Handler {
	return &Handler{scanRepo: scanRepo}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}
	defer conn.Close()

	log.Println("New client connected")

	// Send the current snapshot immediately, then push on a fixed cadence.
	if err := conn.WriteJSON(h.scanRepo.GetResults()); err != nil {
		log.Println("Write error:", err)
		return
	}

	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if err := conn.WriteJSON(h.scanRepo.GetResults()); err != nil {
			log.Println("Write error:", err)
			return
		}
	}
}
