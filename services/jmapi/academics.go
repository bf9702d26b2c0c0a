package jmapi

import (
	"context"

	"github.com/jakartamandarin/console/core/student"
)

func (c *Client) ListClasses(ctx context.Context) ([]student.ClassRecord, error) {
	var out []student.ClassRecord
	if err := c.get(ctx, "/kelas", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MyClasses(ctx context.Context) ([]student.ClassRecord, error) {
	var out []student.ClassRecord
	if err := c.get(ctx, "/kelas/my-classes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ClassesStats(ctx context.Context) (student.ClassesStats, error) {
	var out student.ClassesStats
	if err := c.get(ctx, "/student/classes-stats", nil, &out); err != nil {
		return student.ClassesStats{}, err
	}
	return out, nil
}

func (c *Client) MyAttendance(ctx context.Context) ([]student.AttendanceRecord, error) {
	var out []student.AttendanceRecord
	if err := c.get(ctx, "/absensi/my-attendance", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AttendanceStats(ctx context.Context) (student.AttendanceStats, error) {
	var out student.AttendanceStats
	if err := c.get(ctx, "/student/attendance-stats", nil, &out); err != nil {
		return student.AttendanceStats{}, err
	}
	return out, nil
}
