package service

import (
	"context"

	"namedeck/internal/dto"
	"namedeck/internal/pkg/logger"
	"namedeck/internal/whatsapp"
)

type IDirectoryService interface {
	ListGroups(ctx context.Context) ([]dto.GroupSummary, error)
	ListParticipants(ctx context.Context, groupId string) ([]dto.Participant, error)
}

type directoryService struct {
	session ISessionService
	logger  logger.ILogger
}

func NewDirectoryService(session ISessionService, log logger.ILogger) IDirectoryService {
	return &directoryService{session: session, logger: log}
}

func (s *directoryService) ListGroups(ctx context.Context) ([]dto.GroupSummary, error) {
	if !s.session.IsReady() {
		return nil, ErrNotReady
	}

	chats, err := s.session.Client().Chats(ctx)
	if err != nil {
		s.logger.Error("DirectoryService", "Error fetching groups", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	// Client order is kept as-is; there is no ordering contract to add.
	groups := make([]dto.GroupSummary, 0, len(chats))
	for _, chat := range chats {
		if !chat.IsGroup {
			continue
		}
		groups = append(groups, dto.GroupSummary{
			Id:               chat.ID,
			Name:             chat.Name,
			ParticipantCount: len(chat.ParticipantIDs),
		})
	}
	return groups, nil
}

func (s *directoryService) ListParticipants(ctx context.Context, groupId string) ([]dto.Participant, error) {
	if !s.session.IsReady() {
		return nil, ErrNotReady
	}

	client := s.session.Client()
	chat, err := client.ChatByID(ctx, groupId)
	if err != nil {
		s.logger.Error("DirectoryService", "Error resolving chat", map[string]interface{}{"group_id": groupId, "error": err.Error()})
		return nil, err
	}
	if !chat.IsGroup {
		return nil, ErrNotAGroup
	}

	participants := make([]dto.Participant, 0, len(chat.ParticipantIDs))
	for _, id := range chat.ParticipantIDs {
		participants = append(participants, s.enrich(ctx, client, id))
	}
	return participants, nil
}

// enrich resolves contact details and a profile photo for one participant.
// Any failure degrades that single record to bare phone-number identity;
// it never propagates to the caller.
func (s *directoryService) enrich(ctx context.Context, client whatsapp.Client, id string) dto.Participant {
	number := whatsapp.PhoneNumber(id)

	contact, err := client.ContactByID(ctx, id)
	if err != nil {
		s.logger.Warn("DirectoryService", "Contact lookup failed", map[string]interface{}{"participant": id, "error": err.Error()})
		return dto.Participant{Id: id, Name: number, Number: number}
	}

	picURL, err := client.ProfilePhotoURL(ctx, id)
	if err != nil {
		s.logger.Warn("DirectoryService", "Profile photo lookup failed", map[string]interface{}{"participant": id, "error": err.Error()})
		return dto.Participant{Id: id, Name: number, Number: number}
	}

	name := contact.ShortName
	if name == "" {
		name = contact.FullName
	}
	if name == "" {
		name = number
	}

	return dto.Participant{
		Id:            id,
		Name:          name,
		Number:        number,
		ProfilePicUrl: picURL,
	}
}
