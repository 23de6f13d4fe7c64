package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/shashiranjanraj/kirana/app/repositories"
	"github.com/shashiranjanraj/kirana/config"
	"github.com/shashiranjanraj/kirana/pkg/database"
	"github.com/shashiranjanraj/kirana/pkg/storage"
)

// kirana upload:images — push local product images to S3 and attach
// their URLs to the matching products. A file named 1001.jpg belongs to
// the product with Index 1001; that numeric stem is the legacy join key.
var uploadImagesCmd = &cobra.Command{
	Use:   "upload:images [dir]",
	Short: "Upload product images to S3 and attach the URLs to products",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		dir := filepath.Join("images", "Products")
		if len(args) == 1 {
			dir = args[0]
		}

		ctx := cmd.Context()

		store, err := storage.NewS3(ctx, storage.Config{
			Bucket:   config.StorageS3Bucket(),
			Region:   config.StorageS3Region(),
			Key:      config.StorageS3Key(),
			Secret:   config.StorageS3Secret(),
			Endpoint: config.StorageS3Endpoint(),
			BaseURL:  config.Get("S3_URL", ""),
		})
		if err != nil {
			return err
		}

		client, err := database.Connect(ctx, config.MongoURI())
		if err != nil {
			return err
		}
		defer database.Disconnect(client) //nolint:errcheck

		col := client.Database(config.MongoDB()).Collection(repositories.Collection)

		files, err := os.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("read image dir %s: %w", dir, err)
		}

		for _, f := range files {
			if f.IsDir() {
				continue
			}
			name := f.Name()

			content, err := os.ReadFile(filepath.Join(dir, name))
			if err != nil {
				return fmt.Errorf("read %s: %w", name, err)
			}

			key := "products/" + name
			if err := store.Put(ctx, key, contentType(name), content); err != nil {
				return err
			}
			url := store.URL(key)

			stem := strings.TrimSuffix(name, filepath.Ext(name))
			index, err := strconv.Atoi(stem)
			if err != nil {
				fmt.Printf("⚠️  %s: file name is not a product index, uploaded only\n", name)
				continue
			}

			res, err := col.UpdateOne(ctx,
				bson.M{"Index": index},
				bson.M{"$set": bson.M{"Image": url}},
			)
			if err != nil {
				return fmt.Errorf("attach image to product %d: %w", index, err)
			}
			if res.MatchedCount == 0 {
				fmt.Printf("⚠️  product with index %d not found\n", index)
				continue
			}
			fmt.Printf("✅  product %d → %s\n", index, url)
		}
		return nil
	},
}

func contentType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	default:
		return "image/jpeg"
	}
}
