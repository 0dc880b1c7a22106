package http

import (
	"grassroots-tasks/internal/model"
	"grassroots-tasks/internal/session"
)

type profileResp struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	Name      string `json:"name"`
	HTMLURL   string `json:"html_url"`
}

type loginResp struct {
	SessionID string      `json:"session_id"`
	Profile   profileResp `json:"profile"`
}

func newProfileResp(p model.Profile) profileResp {
	return profileResp{
		Login:     p.Login,
		AvatarURL: p.AvatarURL,
		Name:      p.Name,
		HTMLURL:   p.HTMLURL,
	}
}

func newLoginResp(out session.LoginOutput) loginResp {
	return loginResp{
		SessionID: out.SessionID,
		Profile:   newProfileResp(out.Profile),
	}
}
