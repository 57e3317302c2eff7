package model

// Award is read-only judging reference data for one award category
type Award struct {
	ID                string   `json:"id" bson:"_id"`
	Name              string   `json:"name" bson:"name"`
	Description       string   `json:"description" bson:"description"`
	WhatJudgesWant    string   `json:"whatJudgesWant" bson:"whatJudgesWant"`
	StrongSignals     []string `json:"strongSignals" bson:"strongSignals"`
	RedFlags          []string `json:"redFlags" bson:"redFlags"`
	Checklist         []string `json:"checklist" bson:"checklist"`
	ExampleStructures []string `json:"exampleStructures" bson:"exampleStructures"`
}
