package gstrmerge

import (
	"fmt"
	"log/slog"

	"github.com/ukaji3/gstrmerge-go/pkg/gstrmerge/aggregate"
	"github.com/ukaji3/gstrmerge-go/pkg/gstrmerge/classify"
	"github.com/ukaji3/gstrmerge-go/pkg/gstrmerge/models"
	"github.com/ukaji3/gstrmerge-go/pkg/gstrmerge/parser"
	"github.com/ukaji3/gstrmerge-go/pkg/gstrmerge/writer"
)

// stateSheetPattern names the single sheet of a per-state workbook in state mode.
const stateSheetPattern = "State_%s"

// Result is the outcome of a merge run.
type Result struct {
	// Artifact is the workbook or archive to download. Nil when nothing was merged.
	Artifact *models.Artifact
	// Log has one entry per input file, in input order.
	Log models.ProcessLog
	// Rows is the number of data rows merged across all outputs.
	Rows int
}

// merger carries the state of one run.
type merger struct {
	opts       Options
	log        *slog.Logger
	classifier *classify.Classifier
	keys       classify.KeyExtractor
	agg        *aggregate.Aggregator
}

// Merge processes files in order and builds the merged artifact.
// Problems with individual files or sheets are recorded in the result log
// and never abort the run. When no table could be merged, the returned
// error is ErrNoData and the result carries the log only.
func Merge(files []models.InputFile, opts Options) (*Result, error) {
	if _, err := aggregate.ParseMode(string(opts.Mode)); err != nil {
		return nil, err
	}

	m := &merger{
		opts:       opts,
		log:        opts.logger(),
		classifier: classify.NewClassifier(opts.ExcludedSheets, opts.OnlySheets),
		keys:       opts.keyExtractor(),
		agg:        aggregate.New(opts.Mode),
	}

	res := &Result{Log: make(models.ProcessLog, 0, len(files))}
	for _, in := range files {
		entry := m.processFile(in)
		m.log.Info("Processed file", "file", in.Name, "status", entry.Status, "sheets", len(entry.Sheets))
		res.Log = append(res.Log, entry)
	}

	if m.agg.Empty() {
		m.log.Warn("No data merged", "files", len(files))
		return res, ErrNoData
	}

	artifact, rows, err := m.build()
	if err != nil {
		return res, err
	}
	res.Artifact = artifact
	res.Rows = rows
	return res, nil
}

// processFile extracts every data sheet of one file into the aggregator.
func (m *merger) processFile(in models.InputFile) models.LogEntry {
	entry := models.LogEntry{FileName: in.Name}

	var state string
	if m.opts.Mode.UsesState() {
		key, err := m.keys.Key(in.Name)
		if err != nil {
			m.log.Warn("Skipping file without state code", "file", in.Name, "error", err)
			entry.Status = models.StatusSkippedBadName
			entry.Errors = []string{err.Error()}
			return entry
		}
		state = key
	}

	wb, err := parser.OpenWorkbook(in)
	if err != nil {
		m.log.Error("Cannot open workbook", "file", in.Name, "error", err)
		entry.Status = models.StatusFailed
		entry.Errors = []string{err.Error()}
		return entry
	}
	defer wb.Close()

	for _, sheet := range wb.SheetNames() {
		if m.classifier.Classify(sheet) == classify.Exclude {
			m.log.Debug("Excluded sheet", "file", in.Name, "sheet", sheet)
			continue
		}

		table, err := wb.ExtractTable(sheet, m.opts.Header)
		if err != nil {
			m.log.Warn("Skipping sheet", "file", in.Name, "sheet", sheet, "error", err)
			entry.Errors = append(entry.Errors, err.Error())
			continue
		}
		if table.Len() == 0 {
			m.log.Debug("Sheet has no data rows", "file", in.Name, "sheet", sheet)
			continue
		}

		table.AppendColumn(m.opts.FileColumn, in.Name)
		table.AppendColumn(m.opts.SheetColumn, sheet)
		key := m.agg.Add(table, state)
		m.log.Debug("Merged sheet", "file", in.Name, "sheet", sheet, "rows", table.Len(), "group", key.String())
		entry.Sheets = append(entry.Sheets, sheet)
	}

	entry.Status = fileStatus(len(entry.Sheets), len(entry.Errors))
	return entry
}

// fileStatus classifies a file from its merged sheet and error counts.
func fileStatus(merged, failed int) models.Status {
	switch {
	case merged > 0 && failed == 0:
		return models.StatusSuccess
	case merged > 0:
		return models.StatusPartialSuccess
	case failed > 0:
		return models.StatusFailed
	default:
		return models.StatusSkippedNoData
	}
}

// build serializes the aggregated groups according to the mode.
func (m *merger) build() (*models.Artifact, int, error) {
	groups := m.agg.Groups()
	rows := 0
	for _, g := range groups {
		for _, s := range g.Sheets {
			rows += s.Table.Len()
		}
	}

	switch m.opts.Mode {
	case ModeFlat:
		data, err := writer.WriteTable(groups[0].Sheets[0].Table, m.opts.SheetName)
		if err != nil {
			return nil, 0, err
		}
		return &models.Artifact{Filename: m.opts.TableFilename, MIMEType: MIMEWorkbook, Data: data}, rows, nil

	case ModeSheet:
		data, err := writer.WriteSheets(groups[0].Sheets, m.opts.SheetName)
		if err != nil {
			return nil, 0, err
		}
		return &models.Artifact{Filename: m.opts.WorkbookFilename, MIMEType: MIMEWorkbook, Data: data}, rows, nil

	case ModeState, ModeStateSheet:
		entries := make([]writer.ArchiveEntry, 0, len(groups))
		for _, g := range groups {
			data, err := writer.WriteSheets(g.Sheets, fmt.Sprintf(stateSheetPattern, g.Name))
			if err != nil {
				return nil, 0, fmt.Errorf("state %s: %w", g.Name, err)
			}
			entries = append(entries, writer.ArchiveEntry{
				Name: fmt.Sprintf(m.opts.EntryPattern, g.Name),
				Data: data,
			})
		}
		data, err := writer.PackArchive(entries)
		if err != nil {
			return nil, 0, err
		}
		return &models.Artifact{Filename: m.opts.ArchiveFilename, MIMEType: MIMEArchive, Data: data}, rows, nil
	}

	return nil, 0, fmt.Errorf("unsupported mode: %s", m.opts.Mode)
}
