package controllers

import (
	"net/http"

	"github.com/bnbcollege/feeportal/utils"
	"github.com/gin-gonic/gin"
)

// ShowCaptcha generates a fresh CAPTCHA challenge, stores the expected text
// in the session and serves the rendered PNG. The challenge stays valid
// until the next call replaces it.
func ShowCaptcha(c *gin.Context) {
	text, err := utils.GenerateCaptchaText()
	if err != nil {
		utils.LogError("Failed to generate captcha text: %v", err)
		utils.InternalServerError(c, "Failed to generate captcha", nil)
		return
	}

	if err := utils.SetCaptchaText(c, text); err != nil {
		utils.LogError("Failed to store captcha text in session: %v", err)
		utils.InternalServerError(c, "Failed to generate captcha", nil)
		return
	}

	img, err := utils.RenderCaptchaImage(text)
	if err != nil {
		utils.LogError("Failed to render captcha image: %v", err)
		utils.InternalServerError(c, "Failed to generate captcha", nil)
		return
	}

	c.Data(http.StatusOK, "image/png", img)
}
