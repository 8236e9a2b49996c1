// Package world holds the terrain model: tiles, the map grid, movement
// resolution against terrain, and line-of-sight visibility.
package world

import "github.com/vovakirdan/tui-rogue/internal/core"

// TileKind is the top-level terrain class of a tile.
type TileKind int

const (
	KindEmpty TileKind = iota
	KindWall
	KindFloor
)

// WallOrientation tells which side of a wall is showing.
// Top is the upper surface seen when more wall continues below;
// Face is the front of a wall with open ground beneath it.
type WallOrientation int

const (
	WallTop WallOrientation = iota
	WallFace
)

// WallMaterial is what a wall is built from.
type WallMaterial int

const (
	WallBasic WallMaterial = iota
	WallBrick
)

// FloorMaterial is what a floor is made of.
type FloorMaterial int

const (
	FloorDirt FloorMaterial = iota
	FloorStone
	FloorGrass
	FloorTileBlue
	FloorTileBeige
	FloorConcrete
	FloorWater
	FloorMud
)

// String returns the material name.
func (f FloorMaterial) String() string {
	switch f {
	case FloorDirt:
		return "Dirt"
	case FloorStone:
		return "Stone"
	case FloorGrass:
		return "Grass"
	case FloorTileBlue:
		return "TileBlue"
	case FloorTileBeige:
		return "TileBeige"
	case FloorConcrete:
		return "Concrete"
	case FloorWater:
		return "Water"
	case FloorMud:
		return "Mud"
	default:
		return "Unknown"
	}
}

// TileType is a tagged union over Empty, Wall(orientation, material) and
// Floor(material). Only the fields matching Kind are meaningful.
type TileType struct {
	Kind        TileKind
	Orientation WallOrientation
	Wall        WallMaterial
	Floor       FloorMaterial
}

// Empty returns the void tile type.
func Empty() TileType {
	return TileType{Kind: KindEmpty}
}

// Wall returns a wall tile type.
func Wall(o WallOrientation, m WallMaterial) TileType {
	return TileType{Kind: KindWall, Orientation: o, Wall: m}
}

// Floor returns a floor tile type.
func Floor(m FloorMaterial) TileType {
	return TileType{Kind: KindFloor, Floor: m}
}

// IsWall reports whether the tile is any kind of wall.
func (t TileType) IsWall() bool {
	return t.Kind == KindWall
}

// IsFluid reports whether the tile is a water or mud floor.
func (t TileType) IsFluid() bool {
	return t.Kind == KindFloor && (t.Floor == FloorWater || t.Floor == FloorMud)
}

// Blocks reports whether movement into the tile is refused.
func (t TileType) Blocks() bool {
	return t.Kind == KindWall || t.Kind == KindEmpty
}

// Sprite returns the sprite key and tint for the tile type.
// The mapping is fixed; the renderer's atlas resolves keys to glyphs.
func (t TileType) Sprite() SpriteInfo {
	switch t.Kind {
	case KindWall:
		tint := wallTints[t.Wall]
		if t.Orientation == WallFace {
			return SpriteInfo{Key: wallFaceKeys[t.Wall], Tint: tint}
		}
		return SpriteInfo{Key: wallTopKeys[t.Wall], Tint: tint.Scale(0.7)}
	case KindFloor:
		return floorSprites[t.Floor]
	default:
		return VoidSprite
	}
}

var wallTopKeys = map[WallMaterial]string{
	WallBasic: "wall top",
	WallBrick: "brick wall top",
}

var wallFaceKeys = map[WallMaterial]string{
	WallBasic: "wall face",
	WallBrick: "brick wall face",
}

var wallTints = map[WallMaterial]core.Color{
	WallBasic: core.RGBA(0.62, 0.62, 0.66, 1),
	WallBrick: core.RGBA(0.71, 0.36, 0.27, 1),
}

var floorSprites = map[FloorMaterial]SpriteInfo{
	FloorDirt:      {Key: "16 16 Dark Sand", Tint: core.RGBA(0.55, 0.42, 0.27, 1)},
	FloorStone:     {Key: "16 16 Stone Brick", Tint: core.RGBA(0.5, 0.5, 0.52, 1)},
	FloorGrass:     {Key: "16 16 Light Grass", Tint: core.RGBA(0.33, 0.62, 0.25, 1)},
	FloorTileBlue:  {Key: "floor tile 2", Tint: core.RGBA(0.35, 0.48, 0.75, 1)},
	FloorTileBeige: {Key: "biege brick floor", Tint: core.RGBA(0.85, 0.78, 0.6, 1)},
	FloorConcrete:  {Key: "16 16 Light Stone", Tint: core.RGBA(0.72, 0.72, 0.7, 1)},
	FloorWater:     {Key: "water", Tint: core.RGBA(0.2, 0.4, 0.85, 1)},
	FloorMud:       {Key: "mud", Tint: core.RGBA(0.4, 0.3, 0.18, 1)},
}

// Tile is one cell of the map.
type Tile struct {
	Type     TileType
	Position core.Position
}
