package user

import (
	"net/http"

	"github.com/fintrix/fintrix-backend/internal/presentation/helpers"
	presentationProtocols "github.com/fintrix/fintrix-backend/internal/presentation/protocols"
)

type LogoutUserController struct{}

func NewLogoutUserController() *LogoutUserController {
	return &LogoutUserController{}
}

type LogoutUserControllerResponse struct {
	Message string `json:"message"`
}

func (c *LogoutUserController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	response := helpers.CreateResponse(&LogoutUserControllerResponse{
		Message: "logged out successfully",
	}, http.StatusOK)
	response.Cookies = append(response.Cookies, helpers.ExpiredSessionCookie())

	return response
}
