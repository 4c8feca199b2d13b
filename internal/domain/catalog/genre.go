package catalog

import (
	"fmt"
)

// Genre ジャンルを表す値オブジェクト
type Genre string

const (
	GenreAll       Genre = "all" // 絞り込みなし（クエリ専用）
	GenreRPG       Genre = "RPG"
	GenreAction    Genre = "Action"
	GenreStrategy  Genre = "Strategy"
	GenreRacing    Genre = "Racing"
	GenreAdventure Genre = "Adventure"
	GenreShooter   Genre = "Shooter"
)

// genres アイテムに設定可能なジャンル一覧
var genres = []Genre{
	GenreRPG,
	GenreAction,
	GenreStrategy,
	GenreRacing,
	GenreAdventure,
	GenreShooter,
}

// NewGenre 新しいGenreを作成（アイテム用: "all"は不可）
func NewGenre(s string) (Genre, error) {
	g := Genre(s)
	if !g.Valid() {
		return "", fmt.Errorf("%w: %s", ErrInvalidGenre, s)
	}
	return g, nil
}

// ParseGenreFilter クエリ用のジャンルを解析（空文字列は"all"として扱う）
func ParseGenreFilter(s string) (Genre, error) {
	if s == "" || Genre(s) == GenreAll {
		return GenreAll, nil
	}
	return NewGenre(s)
}

// Genres 有効なジャンル一覧を返す
func Genres() []Genre {
	out := make([]Genre, len(genres))
	copy(out, genres)
	return out
}

// String 文字列表現を返す
func (g Genre) String() string {
	return string(g)
}

// Valid アイテムに設定可能なジャンルかどうかを返す
func (g Genre) Valid() bool {
	switch g {
	case GenreRPG, GenreAction, GenreStrategy, GenreRacing, GenreAdventure, GenreShooter:
		return true
	default:
		return false
	}
}

// IsAll 絞り込みなしかどうかを返す
func (g Genre) IsAll() bool {
	return g == GenreAll
}
