package controllers

import (
	"errors"
	"strconv"
	"time"

	"bourse/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

const sessionTTL = 7 * 24 * time.Hour

type AuthController struct {
	DB     *gorm.DB
	Logger *zap.SugaredLogger
	Secret []byte
	// Wallet balance granted to new users.
	StartingMoney int64
}

type credentialsParams struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

func (a AuthController) Register(c *gin.Context) {
	var payload credentialsParams
	if err := c.BindJSON(&payload); err != nil {
		RespondBadRequestErr(c, []error{ErrInvalidRequest})
		return
	}

	existing, err := models.GetUserByUsername(a.DB, payload.Username)
	if err != nil {
		a.Logger.Errorw("error looking up user", "error", err)
		RespondInternalErr(c)
		return
	}
	if existing != nil {
		RespondBadRequestErr(c, []error{ErrUsernameTaken})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		a.Logger.Errorw("error hashing password", "error", err)
		RespondInternalErr(c)
		return
	}

	user, err := models.CreateUser(a.DB, payload.Username, payload.Email, string(hash), a.StartingMoney)
	if err != nil {
		a.Logger.Errorw("error creating user", "error", err)
		RespondInternalErr(c)
		return
	}

	a.respondWithToken(c, user)
}

func (a AuthController) Login(c *gin.Context) {
	var payload credentialsParams
	if err := c.BindJSON(&payload); err != nil {
		RespondBadRequestErr(c, []error{ErrInvalidRequest})
		return
	}

	user, err := models.GetUserByUsername(a.DB, payload.Username)
	if err != nil {
		a.Logger.Errorw("error looking up user", "error", err)
		RespondInternalErr(c)
		return
	}
	if user == nil {
		RespondBadRequestErr(c, []error{ErrInvalidCredentials})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(payload.Password)) != nil {
		RespondBadRequestErr(c, []error{ErrInvalidCredentials})
		return
	}

	a.respondWithToken(c, user)
}

func (a AuthController) respondWithToken(c *gin.Context, user *models.User) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(user.ID), 10),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.Secret)
	if err != nil {
		a.Logger.Errorw("error signing token", "error", err)
		RespondInternalErr(c)
		return
	}

	RespondOK(c, gin.H{"token": token, "user": user})
}
