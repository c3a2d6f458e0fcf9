package leaderboard

import (
	"log"
	"net/http"

	"api/realtime"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Constants for error messages
const (
	ErrFailedFetchLeaderboard = "Failed to fetch leaderboard"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// GetLeaderboard returns the ranked standings
// @Summary Get leaderboard
// @Description Get up to 100 users ranked by problems solved for the given period filter
// @Tags Leaderboard
// @Produce json
// @Param filter query string false "Period filter" Enums(all-time, this-week, this-month)
// @Success 200 {array} services.LeaderboardEntry
// @Failure 500 {object} map[string]string
// @Router /leaderboard [get]
func GetLeaderboard(c *gin.Context) {
	filter := c.DefaultQuery("filter", services.FilterAllTime)

	entries, err := services.GetLeaderboard(filter)
	if err != nil {
		log.Println("Error fetching leaderboard:", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchLeaderboard)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// LeaderboardWebSocket streams completion events to leaderboard watchers
func LeaderboardWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	realtime.RegisterClient(conn)
	defer func() {
		realtime.UnregisterClient(conn)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
