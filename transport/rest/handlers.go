package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
)

type intentResponse struct {
	Accepted bool          `json:"accepted"`
	Game     *usecase.View `json:"game"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Server) handleGetGame(c *gin.Context) {
	that.mu.Lock()
	view := that.session.View()
	that.mu.Unlock()

	c.JSON(http.StatusOK, view)
}

func (that *Server) handleMove(c *gin.Context) {
	cell, ok := intParam(c, "cell")
	if !ok {
		return
	}

	that.respond(c, func() bool {
		return that.session.PlayMove(cell)
	})
}

func (that *Server) handleJump(c *gin.Context) {
	move, ok := intParam(c, "move")
	if !ok {
		return
	}

	that.respond(c, func() bool {
		return that.session.JumpTo(move)
	})
}

func (that *Server) handleRestart(c *gin.Context) {
	that.respond(c, that.session.Restart)
}

// respond applies intent under the session lock. Rejected intents are still
// a 200: the game simply did not change.
func (that *Server) respond(c *gin.Context, intent func() bool) {
	that.mu.Lock()
	accepted := intent()
	view := that.session.View()
	that.mu.Unlock()

	c.JSON(http.StatusOK, intentResponse{
		Accepted: accepted,
		Game:     view,
	})
}

func intParam(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid " + name + ": " + c.Param(name)})
		return 0, false
	}

	return value, true
}
