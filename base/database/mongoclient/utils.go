package mongoclient

import (
	"fmt"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
)

var (
	ErrNotStruct = fmt.Errorf("patch is not a struct")
)

// MakeBsonM turns a patch struct into a $set document.
// Nil pointers and zero values are left out, set pointers are dereferenced.
func MakeBsonM(patchable interface{}) (bson.M, error) {
	val := reflect.ValueOf(patchable)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil, ErrNotStruct
	}

	bsonM := bson.M{}
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)

		if tag, err := bsoncodec.DefaultStructTagParser(val.Type().Field(i)); err != nil {
			return nil, err
		} else if tag.Skip || !field.CanInterface() || field.IsZero() {
			continue
		} else if field.Kind() == reflect.Ptr {
			bsonM[tag.Name] = field.Elem().Interface()
		} else {
			bsonM[tag.Name] = field.Interface()
		}
	}
	return bsonM, nil
}
