package main

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
)

// Pulls all recorded scene sessions out of the stats database and writes
// them to a local csv, one row per session, so the numbers can be poked at
// in a spreadsheet. Run it with the FORGEGATE_DB* environment variables set.
func main() {
	DownloadSessions()
}

func DownloadSessions() {
	db := ConnectToDbSql()
	rows, err := db.Query("SELECT " +
		"start_moment, " +
		"COALESCE(end_moment, start_moment), " +
		"visitor, " +
		"release_version, " +
		"id, " +
		"frames, " +
		"seconds, " +
		"items_spawned " +
		"FROM scene_sessions")
	Check(err)
	defer func(rows *sql.Rows) { Check(rows.Close()) }(rows)

	dbRows := []dbRow{}
	for rows.Next() {
		row := dbRow{}
		err = rows.Scan(&row.startMoment, &row.endMoment, &row.visitor,
			&row.releaseVersion, &row.id, &row.frames, &row.seconds,
			&row.itemsSpawned)
		Check(err)
		dbRows = append(dbRows, row)
	}

	var sb strings.Builder
	sb.WriteString("start,end,visitor,release,id,frames,seconds,items_spawned\n")
	for i := range dbRows {
		r := &dbRows[i]
		sb.WriteString(fmt.Sprintf("%s,%s,%s,%d,%s,%d,%.2f,%d\n",
			r.startMoment.Format(time.RFC3339),
			r.endMoment.Format(time.RFC3339),
			r.visitor, r.releaseVersion, r.id, r.frames, r.seconds,
			r.itemsSpawned))
	}
	WriteFile("sessions.csv", []byte(sb.String()))
	fmt.Printf("downloaded %d sessions\n", len(dbRows))
}

func ConnectToDbSql() *sql.DB {
	cfg := mysql.Config{
		User:                 os.Getenv("FORGEGATE_DBUSER"),
		Passwd:               os.Getenv("FORGEGATE_DBPASSWORD"),
		Net:                  "tcp",
		Addr:                 os.Getenv("FORGEGATE_DBADDR"),
		DBName:               os.Getenv("FORGEGATE_DBNAME"),
		AllowNativePasswords: true,
		ParseTime:            true,
	}

	db, err := sql.Open("mysql", cfg.FormatDSN())
	Check(err)
	err = db.Ping()
	Check(err)
	return db
}

func Check(e error) {
	if e != nil {
		panic(e)
	}
}

type dbRow struct {
	startMoment    time.Time
	endMoment      time.Time
	visitor        string
	releaseVersion int64
	id             uuid.UUID
	frames         int64
	seconds        float64
	itemsSpawned   int64
}

func WriteFile(name string, data []byte) {
	err := os.WriteFile(name, data, 0644)
	Check(err)
}
