package models

import "time"

// Author identifies the wallet and the specific mfer a post was made with.
type Author struct {
	Address   string `json:"address" validate:"required"`
	Title     string `json:"title" validate:"required"`
	Thumbnail string `json:"thumbnail" validate:"required"`
	Balance   string `json:"balance"`
}

// Post represents a single daily post made with an owned mfer.
type Post struct {
	ID        string    `json:"id"`
	Content   string    `json:"content" validate:"required,max=500"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	Moderated bool      `json:"moderated"`
	Approved  bool      `json:"approved"`
}

// OwnedToken is one mfer owned by a wallet, as reported by the NFT indexer.
type OwnedToken struct {
	Title string `json:"title"`
	Image string `json:"image"`
}
