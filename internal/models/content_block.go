package models

import "github.com/google/uuid"

// Block types accepted by the content block endpoints.
var BlockTypes = map[string]bool{
	"text":  true,
	"image": true,
	"code":  true,
	"quote": true,
	"video": true,
	"table": true,
	"list":  true,
}

func IsValidBlockType(blockType string) bool {
	return BlockTypes[blockType]
}

// ContentBlock is one ordered unit of rich content inside a blog post,
// project or service. Metadata carries type-specific extras such as an
// image URL or a code language.
type ContentBlock struct {
	ID       string                 `json:"id"`
	Type     string                 `json:"type"`
	Content  string                 `json:"content"`
	Order    int                    `json:"order"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

func (b ContentBlock) ItemID() string { return b.ID }
func (b ContentBlock) ItemOrder() int { return b.Order }

// BlockList is stored as a single JSONB column.
type BlockList []ContentBlock

// EnsureIDs assigns an id to every block that arrived without one, so
// client-supplied blocks can be addressed by the block endpoints later.
func (l BlockList) EnsureIDs() {
	for i := range l {
		if l[i].ID == "" {
			l[i].ID = uuid.NewString()
		}
	}
}
