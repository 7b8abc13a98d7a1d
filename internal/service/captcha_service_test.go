package service

import (
	"errors"
	"testing"

	"github.com/saralchem/orderdesk/internal/config"
)

func TestCaptchaVerifyDisabledAlwaysPasses(t *testing.T) {
	svc := NewCaptchaService(config.CaptchaConfig{Enabled: false})
	if svc.Enabled() {
		t.Fatal("captcha should be disabled")
	}
	if err := svc.Verify(CaptchaVerifyPayload{}); err != nil {
		t.Fatalf("disabled captcha must pass, got %v", err)
	}
}

func TestCaptchaVerifyEnabled(t *testing.T) {
	svc := NewCaptchaService(config.CaptchaConfig{Enabled: true})

	err := svc.Verify(CaptchaVerifyPayload{})
	if !errors.Is(err, ErrCaptchaRequired) {
		t.Fatalf("empty payload must require a captcha, got %v", err)
	}

	challenge, err := svc.GenerateImageChallenge()
	if err != nil {
		t.Fatalf("generate challenge failed: %v", err)
	}
	if challenge.CaptchaID == "" || challenge.ImageBase64 == "" {
		t.Fatalf("challenge incomplete: %+v", challenge)
	}

	err = svc.Verify(CaptchaVerifyPayload{CaptchaID: challenge.CaptchaID, CaptchaCode: "definitely-wrong"})
	if !errors.Is(err, ErrCaptchaInvalid) {
		t.Fatalf("wrong answer must fail, got %v", err)
	}
}
