package controller

import (
	"ctchen222/three-in-a-row/internal/api/response"
	"ctchen222/three-in-a-row/internal/api/service"
	"ctchen222/three-in-a-row/pkg/proto"
	"net/http"

	"github.com/gin-gonic/gin"
)

// DeviceController handles device registration and stats requests.
type DeviceController struct {
	deviceService service.DeviceService
}

// NewDeviceController creates a new DeviceController.
func NewDeviceController(deviceService service.DeviceService) *DeviceController {
	return &DeviceController{
		deviceService: deviceService,
	}
}

// Register issues a new device id.
func (dc *DeviceController) Register(c *gin.Context) {
	device, err := dc.deviceService.Register(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	response.SuccessResponseStatus(c, http.StatusCreated, proto.DeviceResponse{DeviceID: device.ID})
}

// Info returns the win and loss tallies of a device.
func (dc *DeviceController) Info(c *gin.Context) {
	device, err := dc.deviceService.Stats(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	response.SuccessResponse(c, proto.DeviceInfoResponse{
		DeviceID: device.ID,
		Wins:     device.Wins,
		Losses:   device.Losses,
	})
}
