package services

// Stable numeric error codes surfaced to clients in error extensions so the
// UI can branch on them without string matching.
const (
	codeAssetDeleteFailed = 1591537315
	codeAssetUpdateFailed = 1590659063
	codeTagAddFailed      = 1591561868
	codeTagRemoveFailed   = 1591561938
	codeUnknownTagOnTag   = 1591561845
	codeUnknownTagOnUntag = 1591561934
	codeAssetAddFailed    = 1594826767
)
