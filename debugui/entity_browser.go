package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/strafe/game"
)

type EntityKind string

const (
	KindBullet EntityKind = "bullet"
	KindEnemy  EntityKind = "enemy"
)

type EntityInfo struct {
	ID   game.EntityID
	Kind EntityKind
	X, Y int
}

// Entity Browser table columns.
const (
	ColumnID = iota
	ColumnKind
	ColumnX
	ColumnY
)

type EntityBrowser struct {
	entities           []EntityInfo
	filtered           []EntityInfo
	selectedID         game.EntityID
	filterText         string
	sortColumn         int
	sortAscending      bool
	maxEntitiesPerPage int
	currentPage        int
}

func NewEntityBrowser(maxEntitiesPerPage int) *EntityBrowser {
	return &EntityBrowser{
		sortColumn:         ColumnID,
		sortAscending:      true,
		maxEntitiesPerPage: maxEntitiesPerPage,
	}
}

func (eb *EntityBrowser) Render(state *game.State) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("X")
		imgui.TableSetupColumn("Y")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.sortColumn = int(spec.ColumnIndex())
			eb.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortSpecs.SetSpecsDirty(false)
		}

		eb.Refresh(state)
		for _, entity := range eb.Page() {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selectedID == entity.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", entity.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.Select(entity.ID)
			}

			imgui.TableNextColumn()
			imgui.Text(string(entity.Kind))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", entity.X))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", entity.Y))
		}

		imgui.EndTable()
	}

	if total := eb.PageCount(); total > 1 {
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, total, len(eb.filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < total-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(eb.filtered)))
	}

	imgui.End()
}

// Refresh rebuilds the rows from the live bullets and enemies.
func (eb *EntityBrowser) Refresh(state *game.State) {
	eb.entities = eb.entities[:0]
	for _, b := range state.Bullets {
		eb.entities = append(eb.entities, EntityInfo{ID: b.ID, Kind: KindBullet, X: b.X, Y: b.Y})
	}
	for _, e := range state.Enemies {
		eb.entities = append(eb.entities, EntityInfo{ID: e.ID, Kind: KindEnemy, X: e.X, Y: e.Y})
	}
	eb.sortEntities()
	eb.filtered = eb.filterEntities(eb.filtered[:0])

	if last := max(0, eb.PageCount()-1); eb.currentPage > last {
		eb.currentPage = last
	}
}

func (eb *EntityBrowser) sortEntities() {
	sort.SliceStable(eb.entities, func(i, j int) bool {
		a, b := eb.entities[i], eb.entities[j]
		if !eb.sortAscending {
			a, b = b, a
		}

		switch eb.sortColumn {
		case ColumnKind:
			return a.Kind < b.Kind
		case ColumnX:
			return a.X < b.X
		case ColumnY:
			return a.Y < b.Y
		default:
			return a.ID < b.ID
		}
	})
}

func (eb *EntityBrowser) filterEntities(dst []EntityInfo) []EntityInfo {
	if eb.filterText == "" {
		return append(dst, eb.entities...)
	}

	filterLower := strings.ToLower(eb.filterText)
	for _, entity := range eb.entities {
		idStr := fmt.Sprintf("%d", entity.ID)
		if !strings.Contains(idStr, filterLower) && !strings.Contains(string(entity.Kind), filterLower) {
			continue
		}
		dst = append(dst, entity)
	}
	return dst
}

// Page returns the filtered rows on the current page.
func (eb *EntityBrowser) Page() []EntityInfo {
	start := eb.currentPage * eb.maxEntitiesPerPage
	end := min(start+eb.maxEntitiesPerPage, len(eb.filtered))
	if start >= end {
		return nil
	}
	return eb.filtered[start:end]
}

func (eb *EntityBrowser) PageCount() int {
	return (len(eb.filtered) + eb.maxEntitiesPerPage - 1) / eb.maxEntitiesPerPage
}

func (eb *EntityBrowser) SetFilter(text string) { eb.filterText = text }

func (eb *EntityBrowser) SetPage(page int) { eb.currentPage = page }

func (eb *EntityBrowser) SortBy(column int, ascending bool) {
	eb.sortColumn = column
	eb.sortAscending = ascending
}

// Select marks id as the entity shown in the Entity Inspector.
func (eb *EntityBrowser) Select(id game.EntityID) { eb.selectedID = id }

// GetSelectedEntity returns the ID of the row last clicked, or 0.
func (eb *EntityBrowser) GetSelectedEntity() game.EntityID {
	return eb.selectedID
}
