package user

import (
	"encoding/json"
	"net/http"

	"github.com/fintrix/fintrix-backend/internal/domain/models"
	"github.com/fintrix/fintrix-backend/internal/domain/usecase"
	"github.com/fintrix/fintrix-backend/internal/presentation/helpers"
	presentationProtocols "github.com/fintrix/fintrix-backend/internal/presentation/protocols"
	"github.com/fintrix/fintrix-backend/internal/utils"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type RegisterUserController struct {
	CreateUserRepository      usecase.CreateUserRepository
	FindUserByEmailRepository usecase.FindUserByEmailRepository
	Validate                  *validator.Validate
}

func NewRegisterUserController(
	createUser usecase.CreateUserRepository,
	findUserByEmail usecase.FindUserByEmailRepository,
) *RegisterUserController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &RegisterUserController{
		CreateUserRepository:      createUser,
		FindUserByEmailRepository: findUserByEmail,
		Validate:                  validate,
	}
}

type RegisterUserControllerBody struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type RegisterUserControllerResponse struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

func (c *RegisterUserController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body RegisterUserControllerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateErrorResponse("invalid body request",
			presentationProtocols.CodeValidation, http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateErrorResponse(helpers.GetErrorMessages(c.Validate, err),
			presentationProtocols.CodeValidation, http.StatusBadRequest)
	}

	existingUser, err := c.FindUserByEmailRepository.FindByEmail(body.Email)
	if err != nil {
		return helpers.CreateErrorResponse("an error occurred when checking for existing user",
			presentationProtocols.CodeInternal, http.StatusInternalServerError)
	}

	if existingUser != nil {
		return helpers.CreateErrorResponse("user already exists",
			presentationProtocols.CodeDuplicateEmail, http.StatusBadRequest)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return helpers.CreateErrorResponse("an error occurred when hashing password",
			presentationProtocols.CodeInternal, http.StatusInternalServerError)
	}

	user, err := c.CreateUserRepository.Create(&models.UserInput{
		Name:     body.Name,
		Email:    body.Email,
		Password: string(hashedPassword),
	})
	if err != nil {
		// The unique email index is the authoritative guard; a concurrent
		// registration loses here.
		if mongo.IsDuplicateKeyError(err) {
			return helpers.CreateErrorResponse("user already exists",
				presentationProtocols.CodeDuplicateEmail, http.StatusBadRequest)
		}
		return helpers.CreateErrorResponse("an error occurred when creating user",
			presentationProtocols.CodeInternal, http.StatusInternalServerError)
	}

	token, err := utils.NewAccessTokenUtil().EncodeToken(user.Id.Hex())
	if err != nil {
		return helpers.CreateErrorResponse("an error occurred when issuing token",
			presentationProtocols.CodeInternal, http.StatusInternalServerError)
	}

	response := helpers.CreateResponse(&RegisterUserControllerResponse{
		Id:    user.Id.Hex(),
		Name:  user.Name,
		Email: user.Email,
		Token: token,
	}, http.StatusCreated)
	response.Cookies = append(response.Cookies, helpers.SessionCookie(token))

	return response
}
