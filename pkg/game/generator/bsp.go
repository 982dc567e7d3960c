package generator

import (
	"math/rand"

	"blademaster/pkg/engine/world"
)

// BSPGenerator generates maps using Binary Space Partitioning
type BSPGenerator struct{}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
	room                *bspRoom
}

// bspRoom represents a room within a BSP leaf node
type bspRoom struct {
	x, y, width, height int
}

func (r *bspRoom) contains(row, col int) bool {
	return row >= r.y && row < r.y+r.height && col >= r.x && col < r.x+r.width
}

// Constants for BSP generation
const (
	minNodeSize     = 8 // Minimum size of a BSP node
	minRoomSize     = 4 // Minimum size of a room
	roomPadding     = 2 // Padding between room and node edge
	maxItemsPerRoom = 2
	closedDoorOdds  = 4 // One in closedDoorOdds doors starts closed
)

// Generate creates a new level using BSP algorithm
func (g *BSPGenerator) Generate(level int, rng *rand.Rand) *Level {
	// Start small and scale with level (add 2 for perimeter)
	rows := 12 + 2 + (level * 4)
	cols := 24 + 2 + (level * 6)

	// Cap maximum size
	if rows > 60 {
		rows = 60
	}
	if cols > 100 {
		cols = 100
	}

	l := newLevel(rows, cols)

	// Leave a 1 tile border so walls always fit
	root := &bspNode{
		x:      1,
		y:      1,
		width:  cols - 2,
		height: rows - 2,
	}

	// More splits at higher levels for more rooms
	minSize := minNodeSize - (level / 3)
	if minSize < 6 {
		minSize = 6
	}
	splitBSP(rng, root, minSize)
	createRooms(rng, root)
	carveRooms(l, root)
	connectRooms(rng, l, root)

	rooms := collectRooms(root)
	start := rooms[rng.Intn(len(rooms))]
	l.startRow = start.y + start.height/2
	l.startCol = start.x + start.width/2

	placeDoors(rng, l, rooms, start)

	for _, room := range rooms {
		l.scatterItems(rng, room.x, room.y, room.width, room.height, rng.Intn(maxItemsPerRoom+1))
	}

	return l
}

// splitBSP recursively splits a BSP node
func splitBSP(rng *rand.Rand, node *bspNode, minSize int) {
	if node.width < minSize*2 && node.height < minSize*2 {
		return // Too small to split
	}

	var splitHorizontal bool
	if node.width > node.height && node.width >= minSize*2 {
		splitHorizontal = false
	} else if node.height > node.width && node.height >= minSize*2 {
		splitHorizontal = true
	} else if node.width >= minSize*2 && node.height >= minSize*2 {
		splitHorizontal = rng.Intn(2) == 0
	} else if node.width >= minSize*2 {
		splitHorizontal = false
	} else {
		splitHorizontal = true
	}

	if splitHorizontal {
		splitPoint := minSize + rng.Intn(node.height-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPoint}
		node.right = &bspNode{x: node.x, y: node.y + splitPoint, width: node.width, height: node.height - splitPoint}
	} else {
		splitPoint := minSize + rng.Intn(node.width-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: splitPoint, height: node.height}
		node.right = &bspNode{x: node.x + splitPoint, y: node.y, width: node.width - splitPoint, height: node.height}
	}

	splitBSP(rng, node.left, minSize)
	splitBSP(rng, node.right, minSize)
}

// createRooms creates rooms in leaf nodes
func createRooms(rng *rand.Rand, node *bspNode) {
	if node.left != nil || node.right != nil {
		if node.left != nil {
			createRooms(rng, node.left)
		}
		if node.right != nil {
			createRooms(rng, node.right)
		}
		return
	}

	roomWidth := minRoomSize + rng.Intn(node.width-minRoomSize-roomPadding+1)
	roomHeight := minRoomSize + rng.Intn(node.height-minRoomSize-roomPadding+1)

	if roomWidth > node.width-roomPadding {
		roomWidth = node.width - roomPadding
	}
	if roomHeight > node.height-roomPadding {
		roomHeight = node.height - roomPadding
	}

	node.room = &bspRoom{
		x:      node.x + rng.Intn(node.width-roomWidth),
		y:      node.y + rng.Intn(node.height-roomHeight),
		width:  roomWidth,
		height: roomHeight,
	}
}

// carveRooms marks room tiles as floor
func carveRooms(l *Level, node *bspNode) {
	if node.room != nil {
		for row := node.room.y; row < node.room.y+node.room.height; row++ {
			for col := node.room.x; col < node.room.x+node.room.width; col++ {
				l.set(row, col, tileRoom)
			}
		}
	}

	if node.left != nil {
		carveRooms(l, node.left)
	}
	if node.right != nil {
		carveRooms(l, node.right)
	}
}

// connectRooms connects sibling subtrees with L-shaped corridors
func connectRooms(rng *rand.Rand, l *Level, node *bspNode) {
	if node.left == nil || node.right == nil {
		return
	}

	leftRoom := getRoom(rng, node.left)
	rightRoom := getRoom(rng, node.right)

	if leftRoom != nil && rightRoom != nil {
		leftCenterX := leftRoom.x + leftRoom.width/2
		leftCenterY := leftRoom.y + leftRoom.height/2
		rightCenterX := rightRoom.x + rightRoom.width/2
		rightCenterY := rightRoom.y + rightRoom.height/2

		if rng.Intn(2) == 0 {
			carveCorridorHorizontal(l, leftCenterY, leftCenterX, rightCenterX)
			carveCorridorVertical(l, rightCenterX, leftCenterY, rightCenterY)
		} else {
			carveCorridorVertical(l, leftCenterX, leftCenterY, rightCenterY)
			carveCorridorHorizontal(l, rightCenterY, leftCenterX, rightCenterX)
		}
	}

	connectRooms(rng, l, node.left)
	connectRooms(rng, l, node.right)
}

// carveCorridorHorizontal carves a one tile wide horizontal corridor
func carveCorridorHorizontal(l *Level, row, startCol, endCol int) {
	if startCol > endCol {
		startCol, endCol = endCol, startCol
	}
	for col := startCol; col <= endCol; col++ {
		if !l.IsFloor(row, col) {
			l.set(row, col, tileCorridor)
		}
	}
}

// carveCorridorVertical carves a one tile wide vertical corridor
func carveCorridorVertical(l *Level, col, startRow, endRow int) {
	if startRow > endRow {
		startRow, endRow = endRow, startRow
	}
	for row := startRow; row <= endRow; row++ {
		if !l.IsFloor(row, col) {
			l.set(row, col, tileCorridor)
		}
	}
}

// getRoom returns a room from a subtree (picks randomly from leaves)
func getRoom(rng *rand.Rand, node *bspNode) *bspRoom {
	if node.room != nil {
		return node.room
	}

	var leftRoom, rightRoom *bspRoom
	if node.left != nil {
		leftRoom = getRoom(rng, node.left)
	}
	if node.right != nil {
		rightRoom = getRoom(rng, node.right)
	}

	if leftRoom != nil && rightRoom != nil {
		if rng.Intn(2) == 0 {
			return leftRoom
		}
		return rightRoom
	}

	if leftRoom != nil {
		return leftRoom
	}
	return rightRoom
}

// collectRooms collects all rooms from the BSP tree
func collectRooms(node *bspNode) []*bspRoom {
	var rooms []*bspRoom

	if node.room != nil {
		rooms = append(rooms, node.room)
	}
	if node.left != nil {
		rooms = append(rooms, collectRooms(node.left)...)
	}
	if node.right != nil {
		rooms = append(rooms, collectRooms(node.right)...)
	}

	return rooms
}

// placeDoors puts a door on every corridor tile that forms a doorway into a
// room: a room tile on one side and rock on both perpendicular sides.
// Doors into the start room are always open.
func placeDoors(rng *rand.Rand, l *Level, rooms []*bspRoom, start *bspRoom) {
	type side struct{ dr, dc int }
	sides := []side{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	for row := 0; row < l.rows; row++ {
		for col := 0; col < l.cols; col++ {
			if l.tiles[row][col] != tileCorridor {
				continue
			}
			for _, s := range sides {
				if !l.isRoom(row+s.dr, col+s.dc) {
					continue
				}
				// Perpendicular neighbours must be solid for a doorway
				if l.IsFloor(row+s.dc, col+s.dr) || l.IsFloor(row-s.dc, col-s.dr) {
					continue
				}

				kind := world.OpenedDoor
				if !start.contains(row+s.dr, col+s.dc) && rng.Intn(closedDoorOdds) == 0 {
					kind = world.ClosedDoor
				}
				l.addFeature(row, col, kind, "")
				break
			}
		}
	}
}
