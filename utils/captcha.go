package utils

import (
	"bytes"
	"crypto/rand"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math/big"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	captchaCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// CaptchaLength is the number of characters in a challenge
	CaptchaLength = 5

	captchaWidth  = 150
	captchaHeight = 50
)

// GenerateCaptchaText generates a random uppercase alphanumeric challenge
func GenerateCaptchaText() (string, error) {
	var sb strings.Builder
	for i := 0; i < CaptchaLength; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(captchaCharset))))
		if err != nil {
			return "", err
		}
		sb.WriteByte(captchaCharset[n.Int64()])
	}
	return sb.String(), nil
}

// RenderCaptchaImage renders the challenge text onto a fixed-size PNG image
// and returns the encoded bytes
func RenderCaptchaImage(text string) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, captchaWidth, captchaHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(15, 30),
	}
	for _, r := range text {
		d.DrawString(string(r))
		// extra spacing between glyphs so the text fills the image
		d.Dot.X += fixed.I(12)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CheckCaptcha compares a submitted answer against the expected challenge
// text. The comparison trims surrounding whitespace and ignores case.
// An empty expected text never matches: it means no challenge was issued.
func CheckCaptcha(input, expected string) bool {
	expected = strings.TrimSpace(expected)
	if expected == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(input), expected)
}
