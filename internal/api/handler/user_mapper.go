package handler

import (
	"github.com/identity-hub/identity-api/internal/core/domain"
	"github.com/identity-hub/identity-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createUserRequest) ports.CreateUserInput {
	in := ports.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		AdminKey: req.AdminKey,
	}
	if req.Config != nil {
		in.Config = &domain.UserConfig{
			Theme:         req.Config.Theme,
			Language:      req.Config.Language,
			Notifications: req.Config.Notifications,
		}
	}
	return in
}

// --- Service result → HTTP response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        string(u.Role),
		DisplayName: u.DisplayName(),
		Admin:       u.IsAdmin(),
	}
}

func toListResponse(r *ports.ListUsersResult) listUsersResponse {
	users := make([]userResponse, 0, len(r.Users))
	for _, u := range r.Users {
		users = append(users, toUserResponse(u))
	}
	return listUsersResponse{
		Users: users,
		Total: r.Total,
		Page:  r.Page,
		Limit: r.Limit,
	}
}

func toProfileResponse(p *domain.Profile) profileResponse {
	return profileResponse{
		ID:    p.ID,
		Name:  p.Name,
		Email: p.Email,
	}
}

func toConfigPayload(cfg *domain.UserConfig) userConfigPayload {
	return userConfigPayload{
		Theme:         cfg.Theme,
		Language:      cfg.Language,
		Notifications: cfg.Notifications,
	}
}

func toAuditHistoryResponse(userID string, events []*domain.AuditEvent) auditHistoryResponse {
	resp := auditHistoryResponse{UserID: userID, Events: make([]auditEventResponse, 0, len(events))}
	for _, e := range events {
		resp.Events = append(resp.Events, auditEventResponse{
			Action:    e.Action,
			Actor:     e.Actor,
			Timestamp: e.Timestamp,
		})
	}
	return resp
}
