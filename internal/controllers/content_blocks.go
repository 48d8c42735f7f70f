package controllers

import (
	"avercms/internal/models"
	"avercms/internal/ordering"

	"github.com/google/uuid"
)

// Request bodies shared by the block endpoints of blogs, projects and
// services.

type addBlockRequest struct {
	Type     string                 `json:"type"`
	Content  string                 `json:"content"`
	Metadata map[string]interface{} `json:"metadata"`
}

type removeBlockRequest struct {
	BlockID string `json:"blockId"`
}

type reorderBlocksRequest struct {
	Blocks []ordering.Move `json:"blocks"`
}

type updateBlockRequest struct {
	BlockID  string                 `json:"blockId"`
	Type     string                 `json:"type"`
	Content  string                 `json:"content"`
	Metadata map[string]interface{} `json:"metadata"`
}

// normalizeBlockList prepares a client-supplied list for storage:
// never nil, every block addressable by id, sorted ascending.
func normalizeBlockList(list models.BlockList) models.BlockList {
	if list == nil {
		list = models.BlockList{}
	}
	list.EnsureIDs()
	ordering.SortAsc(list)
	return list
}

// appendBlock places a new block at the end of the list: order is the
// current maximum plus one, or 0 for the first block.
func appendBlock(list models.BlockList, req addBlockRequest) models.BlockList {
	return append(list, models.ContentBlock{
		ID:       uuid.NewString(),
		Type:     req.Type,
		Content:  req.Content,
		Metadata: req.Metadata,
		Order:    ordering.Next(list),
	})
}

// applyBlockUpdate overwrites only the provided fields of the
// addressed block. Empty strings and empty metadata count as "not
// provided" and are skipped, which existing clients depend on.
// Returns false when no block has the given id.
func applyBlockUpdate(list models.BlockList, req updateBlockRequest) bool {
	for i := range list {
		if list[i].ID != req.BlockID {
			continue
		}
		if req.Type != "" {
			list[i].Type = req.Type
		}
		if req.Content != "" {
			list[i].Content = req.Content
		}
		if len(req.Metadata) > 0 {
			list[i].Metadata = req.Metadata
		}
		return true
	}
	return false
}

func reorderBlockList(list models.BlockList, moves []ordering.Move) {
	ordering.Apply(list, moves, func(b *models.ContentBlock, order int) {
		b.Order = order
	})
}

func removeBlockFromList(list models.BlockList, blockID string) models.BlockList {
	return models.BlockList(ordering.RemoveByID(list, blockID))
}
