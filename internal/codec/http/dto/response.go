package dto

import (
	codecDomain "github.com/allisson/linkcodec/internal/codec/domain"
)

// TokenResponse pairs an identifier with its token. Used by encode and decode.
type TokenResponse struct {
	ID    int64  `json:"id"`
	Token string `json:"token"`
}

// MapEncodedTokenToResponse converts a domain encoded token to a response.
func MapEncodedTokenToResponse(encoded codecDomain.EncodedToken) TokenResponse {
	return TokenResponse{
		ID:    encoded.ID,
		Token: encoded.Token.String(),
	}
}

// EncodeBatchResponse lists tokens in request order.
type EncodeBatchResponse struct {
	Tokens []TokenResponse `json:"tokens"`
}

// MapEncodedTokensToResponse converts a batch result to a response.
func MapEncodedTokensToResponse(encoded []codecDomain.EncodedToken) EncodeBatchResponse {
	tokens := make([]TokenResponse, 0, len(encoded))
	for _, e := range encoded {
		tokens = append(tokens, MapEncodedTokenToResponse(e))
	}
	return EncodeBatchResponse{Tokens: tokens}
}

// LinkResponse is a console link for a resource record.
type LinkResponse struct {
	Resource string `json:"resource"`
	ID       int64  `json:"id"`
	Token    string `json:"token"`
	URL      string `json:"url"`
}

// MapLinkToResponse converts a domain link to a response.
func MapLinkToResponse(link *codecDomain.Link) LinkResponse {
	return LinkResponse{
		Resource: link.Resource,
		ID:       link.ID,
		Token:    link.Token.String(),
		URL:      link.URL,
	}
}

// ResolvedLinkResponse is the backend location a console link points to.
type ResolvedLinkResponse struct {
	Resource string `json:"resource"`
	ID       int64  `json:"id"`
	Token    string `json:"token"`
	APIPath  string `json:"api_path"`
}

// MapResolvedLinkToResponse converts a resolved link to a response.
func MapResolvedLinkToResponse(resolved *codecDomain.ResolvedLink) ResolvedLinkResponse {
	return ResolvedLinkResponse{
		Resource: resolved.Resource,
		ID:       resolved.ID,
		Token:    resolved.Token.String(),
		APIPath:  resolved.APIPath,
	}
}
