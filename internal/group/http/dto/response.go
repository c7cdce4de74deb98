package dto

import (
	"time"

	"github.com/google/uuid"

	groupDomain "github.com/allisson/messaging/internal/group/domain"
)

// GroupResponse represents the API view of a group.
type GroupResponse struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Members   []uuid.UUID `json:"members"`
	CreatedAt time.Time   `json:"created_at"`
}

// GroupEnvelope wraps a group payload with the operation outcome message.
type GroupEnvelope struct {
	Group   GroupResponse `json:"group"`
	Message string        `json:"message"`
}

// GroupListEnvelope wraps a group list with the operation outcome message.
type GroupListEnvelope struct {
	Groups  []GroupResponse `json:"groups"`
	Message string          `json:"message"`
}

// MessageEnvelope carries an outcome message with no payload.
type MessageEnvelope struct {
	Message string `json:"message"`
}

// ToGroupResponse converts a domain Group model to a GroupResponse DTO.
func ToGroupResponse(group *groupDomain.Group) GroupResponse {
	members := group.Members
	if members == nil {
		members = []uuid.UUID{}
	}
	return GroupResponse{
		ID:        group.ID,
		Name:      group.Name,
		Members:   members,
		CreatedAt: group.CreatedAt,
	}
}

// ToGroupListResponse converts a list of domain Groups to response DTOs.
func ToGroupListResponse(groups []*groupDomain.Group) []GroupResponse {
	responses := make([]GroupResponse, 0, len(groups))
	for _, group := range groups {
		responses = append(responses, ToGroupResponse(group))
	}
	return responses
}
