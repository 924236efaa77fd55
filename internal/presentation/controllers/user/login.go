package user

import (
	"encoding/json"
	"net/http"

	"github.com/fintrix/fintrix-backend/internal/domain/usecase"
	"github.com/fintrix/fintrix-backend/internal/presentation/helpers"
	presentationProtocols "github.com/fintrix/fintrix-backend/internal/presentation/protocols"
	"github.com/fintrix/fintrix-backend/internal/utils"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type LoginUserController struct {
	FindUserByEmailRepository usecase.FindUserByEmailRepository
	Validate                  *validator.Validate
}

func NewLoginUserController(findUserByEmail usecase.FindUserByEmailRepository) *LoginUserController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &LoginUserController{
		FindUserByEmailRepository: findUserByEmail,
		Validate:                  validate,
	}
}

type LoginUserControllerBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginUserControllerResponse struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

func (c *LoginUserController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body LoginUserControllerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateErrorResponse("invalid body request",
			presentationProtocols.CodeValidation, http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateErrorResponse(helpers.GetErrorMessages(c.Validate, err),
			presentationProtocols.CodeValidation, http.StatusBadRequest)
	}

	user, err := c.FindUserByEmailRepository.FindByEmail(body.Email)
	if err != nil {
		return helpers.CreateErrorResponse("an error occurred when finding user",
			presentationProtocols.CodeInternal, http.StatusInternalServerError)
	}

	// Unknown email and wrong password answer identically.
	if user == nil {
		return helpers.CreateErrorResponse("invalid email or password",
			presentationProtocols.CodeInvalidCredentials, http.StatusBadRequest)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		return helpers.CreateErrorResponse("invalid email or password",
			presentationProtocols.CodeInvalidCredentials, http.StatusBadRequest)
	}

	token, err := utils.NewAccessTokenUtil().EncodeToken(user.Id.Hex())
	if err != nil {
		return helpers.CreateErrorResponse("an error occurred when issuing token",
			presentationProtocols.CodeInternal, http.StatusInternalServerError)
	}

	response := helpers.CreateResponse(&LoginUserControllerResponse{
		Id:    user.Id.Hex(),
		Name:  user.Name,
		Email: user.Email,
		Token: token,
	}, http.StatusOK)
	response.Cookies = append(response.Cookies, helpers.SessionCookie(token))

	return response
}
