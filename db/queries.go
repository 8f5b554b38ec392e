package db

import (
	_ "embed"
)

// Schema

//go:embed sql/create_tables.sql
var CreateTablesSQL string

// Cut queries

//go:embed sql/insert_cut.sql
var InsertCutSQL string

//go:embed sql/update_cut_stage.sql
var UpdateCutStageSQL string

//go:embed sql/mark_cut_complete.sql
var MarkCutCompleteSQL string

//go:embed sql/mark_cut_error.sql
var MarkCutErrorSQL string

//go:embed sql/select_cuts.sql
var SelectCutsSQL string

//go:embed sql/select_cut_by_id.sql
var SelectCutByIDSQL string

//go:embed sql/delete_cuts.sql
var DeleteCutsSQL string
