package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/instaguard/instaguard/internal/server/services"
)

func (h *handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, services.MsgLoginFields)
		return
	}

	res, err := h.svc.Auth.Login(c.Request.Context(), req.Email, req.Password, req.Captcha, c.ClientIP())
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{Message: "Login successful!", Token: res.Token, Role: res.Role})
}

func (h *handler) signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, services.MsgSignupFields)
		return
	}

	err := h.svc.Auth.Signup(c.Request.Context(), services.SignupInput{
		FullName:        req.FullName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Mobile:          req.Mobile,
		Captcha:         req.Captcha,
		RemoteIP:        c.ClientIP(),
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, messageResponse{Message: "Signup successful! Please check your email to verify your account."})
}

func (h *handler) verifyEmail(c *gin.Context) {
	if err := h.svc.Auth.VerifyEmail(c.Request.Context(), c.Param("token")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Email verified successfully!"})
}

func (h *handler) googleSignIn(c *gin.Context) {
	var req googleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, services.MsgMissingGoogleToken)
		return
	}

	res, err := h.svc.Auth.GoogleSignIn(c.Request.Context(), req.IDToken, req.Captcha, c.ClientIP())
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, googleResponse{
		Message:      "Google sign-in successful",
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		Role:         res.Role,
	})
}
