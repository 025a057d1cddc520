package controller

import (
	"ctchen222/three-in-a-row/internal/api/models"
	"ctchen222/three-in-a-row/internal/api/response"
	"ctchen222/three-in-a-row/internal/api/service"
	"ctchen222/three-in-a-row/pkg/proto"
	"net/http"

	"github.com/gin-gonic/gin"
)

// MatchController handles matchmaking and move requests.
type MatchController struct {
	matchService service.MatchService
}

// NewMatchController creates a new MatchController.
func NewMatchController(matchService service.MatchService) *MatchController {
	return &MatchController{
		matchService: matchService,
	}
}

// Join answers 201 with the new match when an opponent was waiting, and 202
// when the device was queued instead.
func (mc *MatchController) Join(c *gin.Context) {
	var req proto.JoinMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	res, err := mc.matchService.Join(c.Request.Context(), req.DeviceID, req.Size)
	if err != nil {
		fail(c, err)
		return
	}
	if res.Queued {
		response.SuccessResponseStatus(c, http.StatusAccepted, proto.QueuedResponse{Status: proto.StatusQueued})
		return
	}

	response.SuccessResponseStatus(c, http.StatusCreated, toMatchResponse(res.Match))
}

func (mc *MatchController) WaitingStatus(c *gin.Context) {
	deviceID := c.Query("device_id")
	if deviceID == "" {
		response.ErrorResponse(c, http.StatusBadRequest, "device_id is required")
		return
	}

	st, err := mc.matchService.WaitingStatus(c.Request.Context(), deviceID)
	if err != nil {
		fail(c, err)
		return
	}

	if st.Status != models.DeviceMatched {
		response.SuccessResponse(c, proto.WaitingStatusResponse{Status: proto.StatusQueued})
		return
	}
	response.SuccessResponse(c, proto.WaitingStatusResponse{
		Status:  proto.StatusMatched,
		MatchID: st.MatchID,
		Players: st.Players,
	})
}

func (mc *MatchController) Get(c *gin.Context) {
	m, err := mc.matchService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	response.SuccessResponse(c, toMatchResponse(m))
}

// Move applies a move. Wrong turn answers 403, an illegal cell 400.
func (mc *MatchController) Move(c *gin.Context) {
	var req proto.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	m, err := mc.matchService.Move(c.Request.Context(), c.Param("id"), req.DeviceID, *req.X, *req.Y)
	if err != nil {
		fail(c, err)
		return
	}

	response.SuccessResponse(c, proto.MoveResponse{
		Board:    m.Board.Rows(),
		NextTurn: m.NextTurn,
		Winner:   m.Winner,
	})
}

func toMatchResponse(m *models.Match) proto.MatchResponse {
	return proto.MatchResponse{
		MatchID: m.ID,
		Size:    m.Board.Size(),
		Board:   m.Board.Rows(),
		Turn:    m.NextTurn,
		Winner:  m.Winner,
		Players: m.Players(),
	}
}
