package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/franciscosanchezn/gin-pizza-designer/internal/middleware"
	"github.com/franciscosanchezn/gin-pizza-designer/internal/models"
	"github.com/franciscosanchezn/gin-pizza-designer/internal/repositories"
	"github.com/franciscosanchezn/gin-pizza-designer/internal/security"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

// RegistrationForm is the submitted sign-up form
type RegistrationForm struct {
	Username string `form:"username" json:"username" binding:"required,min=3,max=64"`
	Password string `form:"password" json:"password" binding:"required,min=6"`
	Confirm  string `form:"confirm" json:"confirm" binding:"eqfield=Password"`
	Fullname string `form:"fullname" json:"fullname"`
	Street   string `form:"street" json:"street"`
	City     string `form:"city" json:"city"`
	State    string `form:"state" json:"state"`
	Zip      string `form:"zip" json:"zip"`
	Phone    string `form:"phone" json:"phone"`
}

// LoginForm is the submitted login form
type LoginForm struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
	Redirect string `form:"redirect" json:"redirect"`
}

var registrationMessages = map[string]string{
	"Username": "Username must be between 3 and 64 characters long",
	"Password": "Password must be at least 6 characters long",
	"Confirm":  "Passwords do not match",
}

type AuthController struct {
	users   repositories.UserRepository
	encoder security.PasswordEncoder
	tokens  *security.TokenIssuer
}

func NewAuthController(users repositories.UserRepository, encoder security.PasswordEncoder, tokens *security.TokenIssuer) *AuthController {
	return &AuthController{
		users:   users,
		encoder: encoder,
		tokens:  tokens,
	}
}

func (ac *AuthController) ShowRegistrationForm(ctx *gin.Context) {
	model := viewModel(ctx)
	model["form"] = RegistrationForm{}
	render(ctx, http.StatusOK, "register", model)
}

// Register godoc
// @Summary Register a user
// @Tags auth
// @Accept x-www-form-urlencoded
// @Accept json
// @Param username formData string true "Username"
// @Param password formData string true "Password, at least 6 characters"
// @Param confirm formData string true "Password confirmation"
// @Success 302 "Redirect to /login"
// @Success 200 {object} map[string]interface{} "Form re-rendered with validation errors"
// @Failure 409 {object} map[string]interface{} "Username already taken"
// @Router /register [post]
func (ac *AuthController) Register(ctx *gin.Context) {
	var form RegistrationForm
	err := ctx.ShouldBind(&form)
	form.Username = strings.TrimSpace(form.Username)
	if err == nil {
		// Length rules apply to the trimmed username
		err = binding.Validator.ValidateStruct(&form)
	}
	if err != nil {
		ac.showRegistrationErrors(ctx, http.StatusOK, form, registrationErrors(err))
		return
	}

	if _, err := ac.users.FindByUsername(ctx.Request.Context(), form.Username); err == nil {
		errs := models.ValidationErrors{}
		errs.Add("username", "Username is already taken")
		ac.showRegistrationErrors(ctx, http.StatusConflict, form, errs)
		return
	} else if !errors.Is(err, repositories.ErrNotFound) {
		internalError(ctx, err, "Failed to look up user")
		return
	}

	encoded, err := ac.encoder.Encode(form.Password)
	if err != nil {
		internalError(ctx, err, "Failed to encode password")
		return
	}

	user, err := ac.users.Save(ctx.Request.Context(), models.User{
		Username:    form.Username,
		Password:    encoded,
		Fullname:    form.Fullname,
		Street:      form.Street,
		City:        form.City,
		State:       form.State,
		Zip:         form.Zip,
		PhoneNumber: form.Phone,
		Role:        models.RoleUser,
	})
	if err != nil {
		internalError(ctx, err, "Failed to create user")
		return
	}

	log.WithFields(log.Fields{"user_id": user.ID, "username": user.Username}).Info("Registered user")
	ctx.Redirect(http.StatusFound, "/login")
}

func (ac *AuthController) showRegistrationErrors(ctx *gin.Context, status int, form RegistrationForm, errs models.ValidationErrors) {
	// Never echo passwords back
	form.Password, form.Confirm = "", ""
	model := viewModel(ctx)
	model["form"] = form
	model["errors"] = errs
	render(ctx, status, "register", model)
}

func registrationErrors(err error) models.ValidationErrors {
	errs := models.ValidationErrors{}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		errs.Add("form", "Invalid registration submission")
		return errs
	}
	for _, fe := range fieldErrors {
		message, ok := registrationMessages[fe.Field()]
		if !ok {
			message = fe.Error()
		}
		errs.Add(strings.ToLower(fe.Field()), message)
	}
	return errs
}

func (ac *AuthController) ShowLoginForm(ctx *gin.Context) {
	model := viewModel(ctx)
	model["redirect"] = ctx.Query("redirect")
	render(ctx, http.StatusOK, "login", model)
}

// Login godoc
// @Summary Log in
// @Description Checks the credentials and issues an access token, stored in an HttpOnly cookie and returned to JSON clients
// @Tags auth
// @Accept x-www-form-urlencoded
// @Accept json
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} map[string]interface{} "Token for JSON clients"
// @Success 302 "Redirect for browsers"
// @Failure 401 {object} map[string]interface{}
// @Router /login [post]
func (ac *AuthController) Login(ctx *gin.Context) {
	var form LoginForm
	if err := ctx.ShouldBind(&form); err != nil {
		ac.showLoginError(ctx, form, "Username and password are required")
		return
	}

	user, err := ac.users.FindByUsername(ctx.Request.Context(), strings.TrimSpace(form.Username))
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		internalError(ctx, err, "Failed to look up user")
		return
	}
	if err != nil || !ac.encoder.Matches(form.Password, user.Password) {
		log.WithField("username", form.Username).Warn("Rejected login")
		ac.showLoginError(ctx, form, "Invalid username or password")
		return
	}

	token, err := ac.tokens.Issue(user)
	if err != nil {
		internalError(ctx, err, "Failed to generate token")
		return
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(middleware.AccessTokenCookie, token, int(ac.tokens.TTL().Seconds()), "/", "", false, true)
	log.WithFields(log.Fields{"user_id": user.ID, "username": user.Username}).Info("User logged in")

	if wantsJSON(ctx) {
		ctx.JSON(http.StatusOK, gin.H{
			"access_token": token,
			"token_type":   "Bearer",
			"expires_in":   int64(ac.tokens.TTL().Seconds()),
			"user":         user,
		})
		return
	}
	ctx.Redirect(http.StatusFound, safeRedirect(form.Redirect))
}

func (ac *AuthController) showLoginError(ctx *gin.Context, form LoginForm, message string) {
	model := viewModel(ctx)
	model["error"] = message
	model["username"] = form.Username
	model["redirect"] = form.Redirect
	render(ctx, http.StatusUnauthorized, "login", model)
}

// Logout godoc
// @Summary Log out
// @Tags auth
// @Success 302 "Redirect to /design"
// @Router /logout [post]
func (ac *AuthController) Logout(ctx *gin.Context) {
	ctx.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", false, true)
	ctx.Redirect(http.StatusFound, "/design")
}

// safeRedirect only follows local paths, falling back to the design form
func safeRedirect(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/design"
	}
	return target
}
