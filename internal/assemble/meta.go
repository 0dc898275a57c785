package assemble

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"draftsmith/internal/draft"
)

// metaInfo is the draft_meta_info.json companion the editor reads before
// opening the document itself. Timestamps are microseconds since the epoch.
type metaInfo struct {
	DraftID         string `json:"draft_id"`
	DraftName       string `json:"draft_name"`
	DraftFoldPath   string `json:"draft_fold_path"`
	DraftRootPath   string `json:"draft_root_path"`
	DraftRemovable  bool   `json:"draft_removable"`
	TmDraftCreate   int64  `json:"tm_draft_create"`
	TmDraftModified int64  `json:"tm_draft_modified"`
	TmDuration      int64  `json:"tm_duration"`
}

func writeMetaInfo(stagingDir string, d *draft.Draft, finalDir, outputRoot string, now time.Time) error {
	meta := metaInfo{
		DraftID:         string(d.ID()),
		DraftName:       d.Name,
		DraftFoldPath:   finalDir,
		DraftRootPath:   outputRoot,
		DraftRemovable:  true,
		TmDraftCreate:   now.UnixMicro(),
		TmDraftModified: now.UnixMicro(),
		TmDuration:      d.Duration,
	}
	return writeCompactJSON(filepath.Join(stagingDir, metaFileName), meta)
}

type agencyMaterial struct {
	SourcePath   string `json:"source_path"`
	UseConverter bool   `json:"use_converter"`
}

// agencyConfig keeps the editor's own misspelled "marterials" key.
type agencyConfig struct {
	Marterials      []agencyMaterial `json:"marterials"`
	UseConverter    bool             `json:"use_converter"`
	VideoResolution int              `json:"video_resolution"`
}

type virtualStoreItem struct {
	CreationTime int64  `json:"creation_time"`
	DisplayName  string `json:"display_name"`
	FilterType   int    `json:"filter_type"`
	ID           string `json:"id"`
	ImportTime   int64  `json:"import_time"`
	SortSubType  int    `json:"sort_sub_type"`
	SortType     int    `json:"sort_type"`
}

type virtualStoreGroup struct {
	Type  int                `json:"type"`
	Value []virtualStoreItem `json:"value"`
}

type virtualStore struct {
	DraftMaterials []string            `json:"draft_materials"`
	VirtualStore   []virtualStoreGroup `json:"draft_virtual_store"`
}

// contentMaterialIDs extracts the identifiers the virtual store indexes from
// the serialized document.
type contentMaterialIDs struct {
	Materials struct {
		Videos []struct {
			ID string `json:"id"`
		} `json:"videos"`
		Audios []struct {
			ID string `json:"id"`
		} `json:"audios"`
		Texts []struct {
			ID string `json:"id"`
		} `json:"texts"`
	} `json:"materials"`
}

// writeCompanions writes the small sidecar files the editor creates next to
// every project: the agency config, the virtual store index, and an empty
// template.
func writeCompanions(stagingDir, finalDir string, content []byte, assetNames []string) error {
	agency := agencyConfig{
		Marterials:      make([]agencyMaterial, 0, len(assetNames)),
		UseConverter:    false,
		VideoResolution: 720,
	}
	for _, name := range assetNames {
		agency.Marterials = append(agency.Marterials, agencyMaterial{
			SourcePath:   filepath.Join(finalDir, materialsDirName, name),
			UseConverter: true,
		})
	}
	if err := writeCompactJSON(filepath.Join(stagingDir, agencyFileName), agency); err != nil {
		return err
	}

	var ids contentMaterialIDs
	if err := json.Unmarshal(content, &ids); err != nil {
		return fmt.Errorf("index materials: %w", err)
	}
	store := virtualStore{
		DraftMaterials: []string{},
		VirtualStore: []virtualStoreGroup{
			{Type: 0, Value: []virtualStoreItem{{}}},
			{Type: 1, Value: []virtualStoreItem{}},
		},
	}
	for _, entry := range ids.Materials.Videos {
		store.DraftMaterials = append(store.DraftMaterials, entry.ID)
	}
	for _, entry := range ids.Materials.Audios {
		store.DraftMaterials = append(store.DraftMaterials, entry.ID)
	}
	for _, entry := range ids.Materials.Texts {
		store.DraftMaterials = append(store.DraftMaterials, entry.ID)
	}
	for _, id := range store.DraftMaterials {
		store.VirtualStore[0].Value = append(store.VirtualStore[0].Value, virtualStoreItem{ID: id})
	}
	if err := writeCompactJSON(filepath.Join(stagingDir, virtualStoreFileName), store); err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(stagingDir, templateFileName), []byte("{}"), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", templateFileName, err)
	}
	return nil
}

func writeCompactJSON(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
